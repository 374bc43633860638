// Package database opens the GORM connection the rest of the app
// shares. The driver comes from DB_DRIVER; sqlite is the default so a
// fresh checkout runs without a server.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/charvi/config"
)

// DB is the shared connection, set by Connect.
var DB *gorm.DB

// Connect opens the configured database and sizes the pool. It pings
// before returning so a bad DSN fails at boot, not on the first query.
func Connect() error {
	dialector, err := open(config.DatabaseDriver(), config.DatabaseDSN())
	if err != nil {
		return err
	}

	// GORM's own logger stays silent; query problems surface as
	// errors through pkg/logger instead.
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("database: sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

func open(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	}
	return nil, fmt.Errorf("database: unsupported DB_DRIVER %q (sqlite, postgres, mysql, sqlserver)", driver)
}
