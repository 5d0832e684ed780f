package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eggfarm/entities"
	"eggfarm/pkg/dailylog/repository"
	"eggfarm/pkg/query"
)

type dailyLogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DailyLogRepository { return &dailyLogRepo{db} }

func (r *dailyLogRepo) Create(ctx context.Context, l *entities.DailyLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *dailyLogRepo) Range(ctx context.Context, q query.Range) ([]entities.DailyLog, error) {
	out := []entities.DailyLog{}
	err := r.db.WithContext(ctx).
		Where("coop_id = ? AND date >= ? AND date <= ?", q.CoopID, q.FirstDay(), q.LastDay()).
		Order("date ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *dailyLogRepo) Latest(ctx context.Context, coopID, date string) (*entities.DailyLog, error) {
	var l entities.DailyLog
	err := r.db.WithContext(ctx).
		Where("coop_id = ? AND date = ?", coopID, date).
		Order("id DESC").
		Take(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}
