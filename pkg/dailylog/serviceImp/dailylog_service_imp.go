package serviceImp

import (
	"context"
	"time"

	"eggfarm/entities"
	"eggfarm/pkg/apperror"
	repo "eggfarm/pkg/dailylog/repository"
	"eggfarm/pkg/dailylog/service"
	"eggfarm/pkg/metrics"
	"eggfarm/pkg/query"
)

type dailyLogSvc struct {
	r   repo.DailyLogRepository
	m   *metrics.Metrics
	now func() time.Time
}

func NewDailyLogService(r repo.DailyLogRepository, m *metrics.Metrics, now func() time.Time) service.DailyLogService {
	if now == nil {
		now = time.Now
	}
	return &dailyLogSvc{r: r, m: m, now: now}
}

func (s *dailyLogSvc) Record(ctx context.Context, in service.DailyLogInput) (*entities.DailyLog, error) {
	if in.CoopID == nil || *in.CoopID == "" || in.EggsCollected == nil || in.FeedGivenG == nil || in.Dewormed == nil {
		return nil, apperror.MissingFields()
	}
	if *in.EggsCollected < 0 {
		return nil, apperror.InvalidField("eggs_collected")
	}
	if *in.FeedGivenG < 0 {
		return nil, apperror.InvalidField("feed_given_g")
	}
	row := &entities.DailyLog{
		CoopID:        *in.CoopID,
		EggsCollected: *in.EggsCollected,
		FeedGivenG:    *in.FeedGivenG,
		Dewormed:      in.Dewormed.Int(),
		Date:          entities.Date(s.now()),
	}
	if err := s.r.Create(ctx, row); err != nil {
		return nil, apperror.Storage("insert daily_logs", err)
	}
	s.m.RowIngested(row.TableName())
	return row, nil
}

func (s *dailyLogSvc) Range(ctx context.Context, q query.Range) ([]entities.DailyLog, error) {
	out, err := s.r.Range(ctx, q)
	if err != nil {
		return nil, apperror.Storage("select daily_logs", err)
	}
	return out, nil
}

// EggsToday resolves same-day duplicates in favour of the latest insert.
func (s *dailyLogSvc) EggsToday(ctx context.Context, coopID string) (int, error) {
	if coopID == "" {
		return 0, apperror.Validation(apperror.MsgMissingQueryParams)
	}
	l, err := s.r.Latest(ctx, coopID, entities.Date(s.now()))
	if err != nil {
		return 0, apperror.Storage("select daily_logs", err)
	}
	if l == nil {
		return 0, nil
	}
	return l.EggsCollected, nil
}
