package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"eggfarm/entities"
	"eggfarm/pkg/query"
	"eggfarm/pkg/sensor/repository"
)

type sensorRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SensorRepository { return &sensorRepo{db} }

func (r *sensorRepo) Create(ctx context.Context, s *entities.SensorReading) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sensorRepo) Range(ctx context.Context, q query.Range) ([]entities.SensorReading, error) {
	out := []entities.SensorReading{}
	err := r.db.WithContext(ctx).
		Where("coop_id = ? AND timestamp >= ? AND timestamp < ?", q.CoopID, q.FirstDay(), q.DayAfterLast()).
		Order("timestamp ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
