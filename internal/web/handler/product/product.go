// Package product serves the public product catalog.
package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	controller "github.com/northsupermart/storefront/internal/db/controller/product"
	"github.com/northsupermart/storefront/internal/db/models"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the product catalog.
	Path = handler.APIPath + "/products"

	// ItemPath is the path of a single product.
	ItemPath = Path + "/:" + handler.IDParam
)

// Service is the product catalog handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the product catalog handler.
var Handler = Service{}

// Init initializes the product catalog handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)
	app.Get(ItemPath, s.Get)

	return nil
}

// List returns all products, newest first. Query errors yield an empty list.
func (s *Service) List(c *fiber.Ctx) error {
	products, err := controller.List(s.db.WithContext(c.UserContext()))
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")

		return c.JSON([]models.Product{})
	}

	return c.JSON(products)
}

// Get returns one product, or an empty object when it cannot be loaded.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return c.JSON(fiber.Map{})
	}

	p, err := controller.Get(s.db.WithContext(c.UserContext()), id)
	if err != nil {
		if !errors.Is(err, controller.ErrProductNotFound) {
			log.Error().Err(err).Uint64("id", id).Msg("failed to load product")
		}

		return c.JSON(fiber.Map{})
	}

	return c.JSON(p)
}
