// Package contact accepts contact form messages.
package contact

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/db/controller/message"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the contact endpoint.
	Path = handler.APIPath + "/contact"
)

// Request is the contact form. Fields are stored as submitted.
type Request struct {
	Name    string `json:"name"    form:"name"`
	Email   string `json:"email"   form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Service is the contact handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, s.Post)

	return nil
}

// Post stores the message.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(Request)
	if err := c.BodyParser(req); err != nil {
		return handler.InvalidBody(c)
	}

	m, err := message.Create(s.db.WithContext(c.UserContext()), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		log.Error().Err(err).Msg("failed to store contact message")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	log.Debug().Uint64("message_id", m.ID).Msg("contact message stored")

	return handler.Message(c, handler.MsgSent)
}
