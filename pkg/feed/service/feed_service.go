package service

import (
	"context"

	"eggfarm/entities"
	"eggfarm/pkg/query"
)

// FeedInput is the POST /feed-weight body.
type FeedInput struct {
	CoopID     *string  `json:"coop_id"`
	FeedWeight *float64 `json:"feed_weight"`
}

type FeedService interface {
	Record(ctx context.Context, in FeedInput) (*entities.FeedWeightReading, error)
	Range(ctx context.Context, q query.Range) ([]entities.FeedWeightReading, error)
}
