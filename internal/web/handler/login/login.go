package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/db/controller/user"
	"github.com/northsupermart/storefront/internal/db/models"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path to the login endpoint.
	Path = handler.APIPath + "/login"
)

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, s.Post)

	return nil
}

// Post checks the credentials and returns the user row. No session is
// created; the client keeps the returned user.
func (s *Service) Post(c *fiber.Ctx) error {
	creds := new(Credentials)
	if err := c.BodyParser(creds); err != nil {
		log.Debug().Err(err).Msg(ErrInvalidFormData.Error())
		return handler.InvalidBody(c)
	}

	u, err := s.authenticate(c, creds)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			log.Error().Err(err).Msg("login failed")
		}

		return handler.Unauthorized(c)
	}

	log.Info().Uint64("user_id", u.ID).Msg("user logged in")

	return c.JSON(u)
}

func (s *Service) authenticate(c *fiber.Ctx, creds *Credentials) (*models.User, error) {
	u, err := user.Authenticate(s.db.WithContext(c.UserContext()), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}

		return nil, err //nolint:wrapcheck
	}

	return u, nil
}
