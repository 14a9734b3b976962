// Package daemon assembles the storefront service from its configuration.
package daemon

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/db/dsn"
	"github.com/northsupermart/storefront/internal/db/kvstore"
	"github.com/northsupermart/storefront/internal/db/models"
	"github.com/northsupermart/storefront/internal/events"
	gormlogger "github.com/northsupermart/storefront/internal/logger/adapter/gorm"
	"github.com/northsupermart/storefront/internal/media"
	"github.com/northsupermart/storefront/internal/web"
)

// ErrConfigNil is returned by New when no configuration is given.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	publisher  events.Publisher
	storage    fiber.Storage
	webService *web.Service
}

// Start serves HTTP until SIGINT or SIGTERM, then shuts down and releases
// the database, publisher and limiter storage.
func (d *Daemon) Start() error {
	addr := ":" + strconv.Itoa(d.cfg.Webserver.Port)

	go func() {
		if err := d.webService.Start(addr); err != nil {
			log.Error().Err(err).Msg("web service stopped")
		}
	}()

	log.Info().Str("addr", addr).Str("engine", d.cfg.DB.GormEngine).Msg("storefront api started")

	d.webService.WaitShutdown()

	return d.Close()
}

// Close releases everything opened by New.
func (d *Daemon) Close() error {
	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close event publisher")
		}
	}

	if d.storage != nil {
		if err := d.storage.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close limiter storage")
		}
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	return sqlDB.Close()
}

// open is swapped in tests to observe the connection New creates.
var open = Open //nolint:gochecknoglobals

// New opens and migrates the database, seeds the admin account and builds
// the web service. On failure everything opened so far is closed again.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	d := &Daemon{cfg: cfg, db: db}

	if err = d.build(); err != nil {
		if cerr := d.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("failed to release resources after init error")
		}

		return nil, err
	}

	return d, nil
}

func (d *Daemon) build() error {
	if err := d.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seed(d.cfg, d.db); err != nil {
		return err
	}

	store := media.New(d.cfg)
	if err := store.Init(); err != nil {
		return err //nolint:wrapcheck
	}

	publisher, err := events.New(d.cfg.Kafka)
	if err != nil {
		return err //nolint:wrapcheck
	}

	d.publisher = publisher

	if d.cfg.RateLimit.Enabled {
		d.storage = kvstore.New(d.cfg)
	}

	d.webService, err = web.New(d.cfg, d.db, web.Deps{
		Publisher:      d.publisher,
		Media:          store,
		LimiterStorage: d.storage,
	})
	if err != nil {
		return fmt.Errorf("failed to init web service: %w", err)
	}

	return nil
}

// Open connects to the configured database engine and applies the pool settings.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		dialector = postgres.Open(dsn.Postgres(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(cfg.DB.Name)
	default:
		dialector = gormmysql.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(cfg.DB.SlowThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	log.Info().
		Str("engine", cfg.DB.GormEngine).
		Int("max_open_conns", cfg.DB.MaxOpenConns).
		Msg("connected to database")

	return db, nil
}
