package repository

import (
	"context"

	"eggfarm/entities"
	"eggfarm/pkg/query"
)

type DailyLogRepository interface {
	Create(ctx context.Context, l *entities.DailyLog) error
	Range(ctx context.Context, q query.Range) ([]entities.DailyLog, error)
	// Latest returns the most recently inserted log for coopID on date, or nil.
	Latest(ctx context.Context, coopID, date string) (*entities.DailyLog, error)
}
