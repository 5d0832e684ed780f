package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCtrl struct {
	db      *gorm.DB
	tables  []string
	started time.Time
}

// NewHealthCtrl reports on db and on the presence of each table in tables.
func NewHealthCtrl(db *gorm.DB, tables ...string) *HealthCtrl {
	return &HealthCtrl{db: db, tables: tables, started: time.Now()}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Index is the plain-text liveness answer on GET /.
func (h *HealthCtrl) Index(c echo.Context) error {
	return c.String(http.StatusOK, "Egg Farm API is running ✅")
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	tables := map[string]check{}
	if h.db == nil {
		db = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = check{Err: "ping: " + err.Error()}
	}

	allOK := db.OK
	for _, t := range h.tables {
		if db.OK && h.db.WithContext(ctx).Migrator().HasTable(t) {
			tables[t] = check{OK: true}
			continue
		}
		tables[t] = check{Err: "missing"}
		allOK = false
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(h.started).Seconds()),
		"checks": map[string]any{
			"database": db,
			"tables":   tables,
		},
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}
