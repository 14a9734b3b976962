// Package kvstore provides the fiber key/value storage backing the login
// rate limiter. The limiter state lives in the application database so
// that several instances share one counter per client.
package kvstore

import (
	"github.com/gofiber/fiber/v2"
	mysqlstorage "github.com/gofiber/storage/mysql/v2"
	postgresstorage "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/db/dsn"
)

// DefaultTable is used when no table name is configured.
const DefaultTable = "login_limiter"

// New returns the storage for the configured database engine. It returns
// nil for sqlite, in which case fiber middleware keeps its state in memory.
func New(cfg *config.Config) fiber.Storage {
	table := cfg.RateLimit.Table
	if table == "" {
		table = DefaultTable
	}

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		log.Debug().Str("table", table).Msg("using mysql limiter storage")

		return mysqlstorage.New(mysqlstorage.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         table,
		})
	case config.EnginePostgres:
		log.Debug().Str("table", table).Msg("using postgres limiter storage")

		return postgresstorage.New(postgresstorage.Config{
			ConnectionURI: dsn.Postgres(cfg),
			Table:         table,
		})
	default:
		log.Debug().Str("engine", cfg.DB.GormEngine).Msg("using in-memory limiter storage")

		return nil
	}
}
