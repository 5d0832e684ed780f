package repository

import (
	"context"

	"eggfarm/entities"
	"eggfarm/pkg/query"
)

type FeedRepository interface {
	Create(ctx context.Context, r *entities.FeedWeightReading) error
	Range(ctx context.Context, q query.Range) ([]entities.FeedWeightReading, error)
}
