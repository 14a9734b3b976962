// Package order accepts storefront orders.
package order

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	controller "github.com/northsupermart/storefront/internal/db/controller/order"
	"github.com/northsupermart/storefront/internal/db/models"
	"github.com/northsupermart/storefront/internal/events"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the order endpoint.
	Path = handler.APIPath + "/orders"
)

// Request is the checkout body. UserID is absent for guest checkouts.
// Numeric fields also accept numeric strings.
type Request struct {
	UserID        handler.Number    `json:"userId"`
	CustomerName  string            `json:"customerName"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	PostalCode    string            `json:"postalCode"`
	TotalAmount   handler.Number    `json:"totalAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	CartItems     []json.RawMessage `json:"cartItems"`
}

// Response is returned after the order row has been inserted.
type Response struct {
	Message string `json:"message"`
	OrderID uint64 `json:"orderId"`
}

// Service is the order handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	publisher events.Publisher
}

// Handler is the order handler.
var Handler = Service{}

// Init initializes the order handler. A nil publisher disables events.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, publisher events.Publisher) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	s.db = db
	s.cfg = cfg
	s.publisher = publisher

	app.Post(Path, s.Post)

	return nil
}

// Post inserts the order and answers with its id. The order-placed event
// is published in the background.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(Request)
	if err := c.BodyParser(req); err != nil {
		return handler.InvalidBody(c)
	}

	userID, idErr := req.UserID.ID()
	total, totalErr := req.TotalAmount.Float()

	if err := errors.Join(idErr, totalErr); err != nil {
		log.Error().Err(err).Msg("failed to place order")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	o := &models.Order{
		UserID:        userID,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
	}

	id, err := controller.Create(s.db.WithContext(c.UserContext()), o, req.CartItems)
	if err != nil {
		log.Error().Err(err).Msg("failed to place order")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	log.Info().
		Uint64("order_id", id).
		Float64("total_amount", o.TotalAmount).
		Int("items", len(req.CartItems)).
		Msg("order placed")

	e := events.NewOrderPlaced(id)
	e.UserID = o.UserID
	e.CustomerName = o.CustomerName
	e.City = o.City
	e.TotalAmount = o.TotalAmount
	e.PaymentMethod = o.PaymentMethod
	e.ItemCount = len(req.CartItems)

	go s.publish(e)

	return c.JSON(Response{Message: handler.MsgOrderPlaced, OrderID: id})
}

// publish runs detached from the request; the publisher applies its own timeout.
func (s *Service) publish(e events.OrderPlaced) {
	if err := s.publisher.PublishOrderPlaced(context.Background(), e); err != nil {
		log.Error().Err(err).Uint64("order_id", e.OrderID).Msg("failed to publish order event")
	}
}
