package serviceImp

import (
	"context"
	"time"

	"eggfarm/entities"
	"eggfarm/pkg/apperror"
	"eggfarm/pkg/metrics"
	"eggfarm/pkg/query"
	repo "eggfarm/pkg/sensor/repository"
	"eggfarm/pkg/sensor/service"
)

type sensorSvc struct {
	r   repo.SensorRepository
	m   *metrics.Metrics
	now func() time.Time
}

// NewSensorService wires the repository. now supplies the server clock; nil means time.Now.
func NewSensorService(r repo.SensorRepository, m *metrics.Metrics, now func() time.Time) service.SensorService {
	if now == nil {
		now = time.Now
	}
	return &sensorSvc{r: r, m: m, now: now}
}

func (s *sensorSvc) Record(ctx context.Context, in service.SensorInput) (*entities.SensorReading, error) {
	if in.CoopID == nil || *in.CoopID == "" || in.Temperature == nil || in.Humidity == nil {
		return nil, apperror.MissingFields()
	}
	row := &entities.SensorReading{
		CoopID:      *in.CoopID,
		Temperature: *in.Temperature,
		Humidity:    *in.Humidity,
		Timestamp:   entities.Timestamp(s.now()),
	}
	if err := s.r.Create(ctx, row); err != nil {
		return nil, apperror.Storage("insert sensor_data", err)
	}
	s.m.RowIngested(row.TableName())
	return row, nil
}

func (s *sensorSvc) Range(ctx context.Context, q query.Range) ([]entities.SensorReading, error) {
	out, err := s.r.Range(ctx, q)
	if err != nil {
		return nil, apperror.Storage("select sensor_data", err)
	}
	return out, nil
}
