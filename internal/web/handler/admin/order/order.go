// Package order lets the back office list orders and move them through
// their statuses.
package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	controller "github.com/northsupermart/storefront/internal/db/controller/order"
	"github.com/northsupermart/storefront/internal/db/models"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the admin order list.
	Path = handler.AdminPath + "/orders"

	// ItemPath is the path of a single order.
	ItemPath = Path + "/:" + handler.IDParam
)

// StatusRequest is the body of a status update.
type StatusRequest struct {
	Status string `json:"status" form:"status"`
}

// Service is the admin order handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin order handler.
var Handler = Service{}

// Init initializes the admin order handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)
	app.Put(ItemPath, s.UpdateStatus)

	return nil
}

// List returns all orders, newest first. Query errors yield an empty list.
func (s *Service) List(c *fiber.Ctx) error {
	orders, err := controller.List(s.db.WithContext(c.UserContext()))
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders")
		return c.JSON([]models.Order{})
	}

	return c.JSON(orders)
}

// UpdateStatus sets the order status. Unknown ids still answer Updated.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ErrMsgInvalidID)
	}

	req := new(StatusRequest)
	if err = c.BodyParser(req); err != nil {
		return handler.InvalidBody(c)
	}

	if err = controller.UpdateStatus(s.db.WithContext(c.UserContext()), id, req.Status); err != nil {
		log.Error().Err(err).Uint64("order_id", id).Msg("failed to update order status")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	log.Info().Uint64("order_id", id).Str("status", req.Status).Msg("order status updated")

	return handler.Message(c, handler.MsgUpdated)
}
