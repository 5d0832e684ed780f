package serviceImp

import (
	"context"
	"time"

	"eggfarm/entities"
	"eggfarm/pkg/apperror"
	repo "eggfarm/pkg/feed/repository"
	"eggfarm/pkg/feed/service"
	"eggfarm/pkg/metrics"
	"eggfarm/pkg/query"
)

type feedSvc struct {
	r   repo.FeedRepository
	m   *metrics.Metrics
	now func() time.Time
}

func NewFeedService(r repo.FeedRepository, m *metrics.Metrics, now func() time.Time) service.FeedService {
	if now == nil {
		now = time.Now
	}
	return &feedSvc{r: r, m: m, now: now}
}

// Record appends every call as its own row; retries are not deduplicated.
func (s *feedSvc) Record(ctx context.Context, in service.FeedInput) (*entities.FeedWeightReading, error) {
	if in.CoopID == nil || *in.CoopID == "" || in.FeedWeight == nil {
		return nil, apperror.MissingFields()
	}
	row := &entities.FeedWeightReading{
		CoopID:     *in.CoopID,
		FeedWeight: *in.FeedWeight,
		Timestamp:  entities.Timestamp(s.now()),
	}
	if err := s.r.Create(ctx, row); err != nil {
		return nil, apperror.Storage("insert feed_data", err)
	}
	s.m.RowIngested(row.TableName())
	return row, nil
}

func (s *feedSvc) Range(ctx context.Context, q query.Range) ([]entities.FeedWeightReading, error) {
	out, err := s.r.Range(ctx, q)
	if err != nil {
		return nil, apperror.Storage("select feed_data", err)
	}
	return out, nil
}
