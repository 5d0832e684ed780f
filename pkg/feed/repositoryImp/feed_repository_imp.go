package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"eggfarm/entities"
	"eggfarm/pkg/feed/repository"
	"eggfarm/pkg/query"
)

type feedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FeedRepository { return &feedRepo{db} }

func (r *feedRepo) Create(ctx context.Context, f *entities.FeedWeightReading) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *feedRepo) Range(ctx context.Context, q query.Range) ([]entities.FeedWeightReading, error) {
	out := []entities.FeedWeightReading{}
	err := r.db.WithContext(ctx).
		Where("coop_id = ? AND timestamp >= ? AND timestamp < ?", q.CoopID, q.FirstDay(), q.DayAfterLast()).
		Order("timestamp ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
