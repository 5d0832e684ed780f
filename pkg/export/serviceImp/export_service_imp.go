package serviceImp

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	dailySvc "eggfarm/pkg/dailylog/service"
	"eggfarm/pkg/export/service"
	feedSvc "eggfarm/pkg/feed/service"
	"eggfarm/pkg/query"
	sensorSvc "eggfarm/pkg/sensor/service"
)

const (
	SheetSensor = "sensor_data"
	SheetFeed   = "feed_data"
	SheetDaily  = "daily_logs"
)

type exportSvc struct {
	sensors sensorSvc.SensorService
	feed    feedSvc.FeedService
	daily   dailySvc.DailyLogService
}

func New(s sensorSvc.SensorService, f feedSvc.FeedService, d dailySvc.DailyLogService) service.ExportService {
	return &exportSvc{sensors: s, feed: f, daily: d}
}

func (s *exportSvc) Workbook(ctx context.Context, q query.Range) (*excelize.File, error) {
	sensors, err := s.sensors.Range(ctx, q)
	if err != nil {
		return nil, err
	}
	feed, err := s.feed.Range(ctx, q)
	if err != nil {
		return nil, err
	}
	logs, err := s.daily.Range(ctx, q)
	if err != nil {
		return nil, err
	}

	sensorRows := make([][]any, 0, len(sensors))
	for _, r := range sensors {
		sensorRows = append(sensorRows, []any{r.CoopID, r.Temperature, r.Humidity, r.Timestamp})
	}
	feedRows := make([][]any, 0, len(feed))
	for _, r := range feed {
		feedRows = append(feedRows, []any{r.CoopID, r.FeedWeight, r.Timestamp})
	}
	logRows := make([][]any, 0, len(logs))
	for _, r := range logs {
		logRows = append(logRows, []any{r.CoopID, r.EggsCollected, r.FeedGivenG, r.Dewormed, r.Date})
	}

	f := excelize.NewFile()
	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetSensor, []any{"coop_id", "temperature", "humidity", "timestamp"}, sensorRows},
		{SheetFeed, []any{"coop_id", "feed_weight", "timestamp"}, feedRows},
		{SheetDaily, []any{"coop_id", "eggs_collected", "feed_given_g", "dewormed", "date"}, logRows},
	}
	for i, sh := range sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sh.name)
		} else {
			_, err = f.NewSheet(sh.name)
		}
		if err == nil {
			err = writeSheet(f, sh.name, sh.header, sh.rows)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", sh.name, err)
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
