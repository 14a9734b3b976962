// Package settings serves the public store settings.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/db/controller/setting"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the settings endpoint.
	Path = handler.APIPath + "/settings"
)

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get returns every setting as one flat object.
func (s *Service) Get(c *fiber.Ctx) error {
	values, err := setting.Map(s.db.WithContext(c.UserContext()))
	if err != nil {
		log.Error().Err(err).Msg("failed to load store settings")

		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	return c.JSON(values)
}
