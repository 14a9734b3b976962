// Package message lists contact messages for the back office.
package message

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	controller "github.com/northsupermart/storefront/internal/db/controller/message"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the admin messages endpoint.
	Path = handler.AdminPath + "/messages"
)

// Service is the admin messages handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin messages handler.
var Handler = Service{}

// Init initializes the admin messages handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)

	return nil
}

// List returns all messages, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	messages, err := controller.List(s.db.WithContext(c.UserContext()))
	if err != nil {
		log.Error().Err(err).Msg("failed to list messages")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	return c.JSON(messages)
}
