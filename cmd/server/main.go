package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"eggfarm/config"
	"eggfarm/database"
	"eggfarm/pkg/apperror"
	"eggfarm/pkg/metrics"
	"eggfarm/pkg/middleware"
	"eggfarm/router"

	// Sensor
	sensorCtrlImp "eggfarm/pkg/sensor/controllerImp"
	sensorRepoImp "eggfarm/pkg/sensor/repositoryImp"
	sensorSvcImp "eggfarm/pkg/sensor/serviceImp"

	// Feed
	feedCtrlImp "eggfarm/pkg/feed/controllerImp"
	feedRepoImp "eggfarm/pkg/feed/repositoryImp"
	feedSvcImp "eggfarm/pkg/feed/serviceImp"

	// Daily logs
	dailyCtrlImp "eggfarm/pkg/dailylog/controllerImp"
	dailyRepoImp "eggfarm/pkg/dailylog/repositoryImp"
	dailySvcImp "eggfarm/pkg/dailylog/serviceImp"

	// Export
	exportCtrlImp "eggfarm/pkg/export/controllerImp"
	exportSvcImp "eggfarm/pkg/export/serviceImp"

	// Health
	healthCtrlImp "eggfarm/pkg/health/controllerImp"
)

const logPrefix = "eggfarm "

func main() {
	logger := log.New(os.Stdout, logPrefix, log.LstdFlags|log.Lshortfile)

	// 1) Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatalf("database: %v", err)
	}
	defer database.Close(db)

	// 3) Echo + routes
	e := newEcho(cfg, db, logger, metrics.New(), time.Now)
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	// 4) Start, then wait for SIGINT/SIGTERM
	go func() {
		logger.Printf("listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
}

// newEcho assembles the full application on db. now is the server clock used
// for every server-assigned timestamp.
func newEcho(cfg config.AppConfig, db *gorm.DB, logger *log.Logger, m *metrics.Metrics, now func() time.Time) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperror.Handler(logger)
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.Middleware())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	e.Use(echoMiddleware.Gzip())

	// Repos/Services/Controllers
	sSvc := sensorSvcImp.NewSensorService(sensorRepoImp.New(db), m, now)
	fSvc := feedSvcImp.NewFeedService(feedRepoImp.New(db), m, now)
	dSvc := dailySvcImp.NewDailyLogService(dailyRepoImp.New(db), m, now)

	var tables []string
	for _, model := range database.Models() {
		if t, ok := model.(interface{ TableName() string }); ok {
			tables = append(tables, t.TableName())
		}
	}

	return router.New(
		e,
		middleware.BearerConfig{Token: cfg.APIToken},
		sensorCtrlImp.New(sSvc),
		feedCtrlImp.New(fSvc),
		dailyCtrlImp.New(dSvc),
		exportCtrlImp.New(exportSvcImp.New(sSvc, fSvc, dSvc)),
		healthCtrlImp.NewHealthCtrl(db, tables...),
		m.Handler(),
	)
}
