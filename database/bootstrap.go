// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eggfarm/entities"
)

// Models lists every table the API owns, in creation order.
func Models() []any {
	return []any{
		&entities.SensorReading{},
		&entities.FeedWeightReading{},
		&entities.DailyLog{},
	}
}

// OpenSQLite opens the single database file shared by all handlers and
// creates the tables and indexes if they are missing.
func OpenSQLite(path string) (*gorm.DB, error) {
	return openSQLite(path, log.New(os.Stdout, "\r\n", log.LstdFlags))
}

// newLogger reports slow queries and errors. An empty lookup is a normal
// answer here, not an error.
func newLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func openSQLite(path string, w logger.Writer) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: newLogger(w),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	// SQLite has one writer; extra connections only wait on busy_timeout.
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(4)

	if err := db.AutoMigrate(Models()...); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
