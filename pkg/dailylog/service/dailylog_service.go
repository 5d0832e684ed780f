package service

import (
	"context"

	"eggfarm/entities"
	"eggfarm/pkg/payload"
	"eggfarm/pkg/query"
)

// DailyLogInput is the POST /daily-log body.
type DailyLogInput struct {
	CoopID        *string       `json:"coop_id"`
	EggsCollected *int          `json:"eggs_collected"`
	FeedGivenG    *float64      `json:"feed_given_g"`
	Dewormed      *payload.Flag `json:"dewormed"`
}

type DailyLogService interface {
	Record(ctx context.Context, in DailyLogInput) (*entities.DailyLog, error)
	Range(ctx context.Context, q query.Range) ([]entities.DailyLog, error)
	// EggsToday reports eggs_collected of the latest log for coopID on the
	// current UTC date, or 0 when there is none.
	EggsToday(ctx context.Context, coopID string) (int, error)
}
