package service

import (
	"context"

	"eggfarm/entities"
	"eggfarm/pkg/query"
)

// SensorInput is the POST /sensor-data body. Nil means the key was absent.
type SensorInput struct {
	CoopID      *string  `json:"coop_id"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
}

type SensorService interface {
	Record(ctx context.Context, in SensorInput) (*entities.SensorReading, error)
	Range(ctx context.Context, q query.Range) ([]entities.SensorReading, error)
}
