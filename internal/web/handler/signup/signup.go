// Package signup registers storefront customers.
package signup

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/db/controller/user"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the signup endpoint.
	Path = handler.APIPath + "/signup"
)

// Request is the signup form.
type Request struct {
	Name     string `json:"name"     form:"name"`
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

// Service is the signup handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the signup handler.
var Handler = Service{}

// Init initializes the signup handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, s.Post)

	return nil
}

// Post creates the user. Emails are not checked for uniqueness.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(Request)
	if err := c.BodyParser(req); err != nil {
		log.Debug().Err(err).Msg("failed to parse signup body")
		return handler.InvalidBody(c)
	}

	u, err := user.Create(s.db.WithContext(c.UserContext()), req.Name, req.Email, req.Password)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to register user")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	log.Info().Uint64("user_id", u.ID).Msg("user registered")

	return handler.Message(c, handler.MsgRegistered)
}
