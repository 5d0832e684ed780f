package router

import (
	"github.com/labstack/echo/v4"

	"eggfarm/pkg/middleware"
)

type ingestRangeCtrl interface {
	Create(echo.Context) error
	Range(echo.Context) error
}

func New(
	e *echo.Echo,
	auth middleware.BearerConfig,
	sensorCtrl ingestRangeCtrl,
	feedCtrl ingestRangeCtrl,
	dailyCtrl interface {
		ingestRangeCtrl
		EggsToday(echo.Context) error
	},
	exportCtrl interface{ Export(echo.Context) error },
	healthCtrl interface {
		Index(echo.Context) error
		Health(echo.Context) error
	},
	metricsHandler echo.HandlerFunc,
) *echo.Echo {
	// Public
	e.GET("/", healthCtrl.Index)
	e.GET("/health", healthCtrl.Health)
	if metricsHandler != nil {
		e.GET("/metrics", metricsHandler)
	}

	// Everything below needs the bearer token.
	api := e.Group("", middleware.BearerAuth(auth))

	api.POST("/sensor-data", sensorCtrl.Create)
	api.GET("/sensor-data-range", sensorCtrl.Range)

	api.POST("/feed-weight", feedCtrl.Create)
	api.GET("/feed-data-range", feedCtrl.Range)

	api.POST("/daily-log", dailyCtrl.Create)
	api.GET("/daily-logs-range", dailyCtrl.Range)
	api.GET("/eggs-today/:coop_id", dailyCtrl.EggsToday)

	api.GET("/export", exportCtrl.Export)
	return e
}
