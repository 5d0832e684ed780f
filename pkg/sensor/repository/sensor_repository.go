package repository

import (
	"context"

	"eggfarm/entities"
	"eggfarm/pkg/query"
)

type SensorRepository interface {
	Create(ctx context.Context, r *entities.SensorReading) error
	Range(ctx context.Context, q query.Range) ([]entities.SensorReading, error)
}
