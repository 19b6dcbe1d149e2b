package database

import (
	"context"
	"fmt"
	"time"

	"movies-api/internal/config"
	"movies-api/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

func Connect(cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             cfg.SlowQueryThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   tablePrefix(cfg),
			SingularTable: true,
		},
		PrepareStmt: true, // Enable prepared statement cache
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	log.WithFields(logrus.Fields{
		"driver": cfg.Driver,
		"prefix": tablePrefix(cfg),
	}).Info("Database connection established successfully")

	database := &Database{
		DB:     db,
		config: cfg,
	}

	if cfg.AutoMigrate {
		if err := database.autoMigrate(log); err != nil {
			log.WithError(err).Error("Failed to run auto migration")
			return nil, fmt.Errorf("failed to run auto migration: %w", err)
		}
	}

	return database, nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// tablePrefix places the catalog tables in their Postgres schema. SQLite has no
// schemas, so tables are unprefixed there.
func tablePrefix(cfg config.DatabaseConfig) string {
	if cfg.Driver != config.DriverPostgres || cfg.Schema == "" {
		return ""
	}
	return cfg.Schema + "."
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

// Dialect reports the name of the active GORM dialector ("postgres" or "sqlite").
func (d *Database) Dialect() string {
	return d.DB.Dialector.Name()
}

// TableName resolves the physical table name of model under the active naming strategy.
func (d *Database) TableName(model interface{}) (string, error) {
	stmt := &gorm.Statement{DB: d.DB}
	if err := stmt.Parse(model); err != nil {
		return "", fmt.Errorf("failed to resolve table for %T: %w", model, err)
	}
	return stmt.Schema.Table, nil
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// autoMigrate bootstraps the catalog schema for local development and tests.
// In production the tables are owned by the admin application.
func (d *Database) autoMigrate(log *logrus.Logger) error {
	log.Info("Running auto migration...")

	if prefix := tablePrefix(d.config); prefix != "" {
		if err := d.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, d.config.Schema)).Error; err != nil {
			return err
		}
	}

	err := d.AutoMigrate(
		&models.Genre{},
		&models.Person{},
		&models.FilmWork{},
		&models.GenreFilmWork{},
		&models.PersonFilmWork{},
	)
	if err != nil {
		return err
	}

	log.Info("Auto migration completed successfully")
	return nil
}
