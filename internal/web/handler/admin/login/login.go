// Package login checks back-office credentials.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/db/controller/admin"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the admin login endpoint.
	Path = handler.AdminPath + "/login"
)

// Credentials is the admin login form.
type Credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Service is the admin login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin login handler.
var Handler = Service{}

// Init initializes the admin login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, s.Post)

	return nil
}

// Post answers Success for valid credentials. No session or token is issued.
func (s *Service) Post(c *fiber.Ctx) error {
	creds := new(Credentials)
	if err := c.BodyParser(creds); err != nil {
		return handler.InvalidBody(c)
	}

	a, err := admin.Authenticate(s.db.WithContext(c.UserContext()), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			log.Warn().Str("username", creds.Username).Str("ip", c.IP()).Msg("admin login rejected")
		} else {
			log.Error().Err(err).Msg("admin login failed")
		}

		return handler.Unauthorized(c)
	}

	log.Info().Uint64("admin_id", a.ID).Msg("admin logged in")

	return handler.Message(c, handler.MsgSuccess)
}
