// Package stats serves the back-office dashboard summary.
package stats

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	controller "github.com/northsupermart/storefront/internal/db/controller/stats"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the dashboard stats endpoint.
	Path = handler.AdminPath + "/stats"
)

// Service is the stats handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the stats handler.
var Handler = Service{}

// Init initializes the stats handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get returns total sales and the order, product and user counts.
func (s *Service) Get(c *fiber.Ctx) error {
	st, err := controller.Collect(s.db.WithContext(c.UserContext()))
	if err != nil {
		log.Error().Err(err).Msg("failed to collect dashboard stats")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	log.Debug().
		Float64("sales", st.Sales).
		Int64("orders", st.Orders).
		Int64("products", st.Products).
		Int64("users", st.Users).
		Msg("dashboard stats collected")

	return c.JSON(st)
}
