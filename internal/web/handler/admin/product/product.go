// Package product manages the catalog from the back office. Create and
// update accept multipart forms with an optional image file.
package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	controller "github.com/northsupermart/storefront/internal/db/controller/product"
	"github.com/northsupermart/storefront/internal/db/models"
	"github.com/northsupermart/storefront/internal/media"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the admin product collection.
	Path = handler.AdminPath + "/products"

	// ItemPath is the path of a single product.
	ItemPath = Path + "/:" + handler.IDParam

	// ImageField is the multipart field carrying the product image.
	ImageField = "image"
)

// Form is the product form. ImageURL is used as the image when no file is
// uploaded on create.
type Form struct {
	Name        string         `json:"name"        form:"name"`
	Category    string         `json:"category"    form:"category"`
	Price       handler.Number `json:"price"       form:"price"`
	Description string         `json:"description" form:"description"`
	ImageURL    string         `json:"imageUrl"    form:"imageUrl"`
}

func (f *Form) fields() (controller.Fields, error) {
	price, err := f.Price.Float()
	if err != nil {
		return controller.Fields{}, err //nolint:wrapcheck
	}

	return controller.Fields{
		Name:        f.Name,
		Category:    f.Category,
		Price:       price,
		Description: f.Description,
	}, nil
}

// Service is the admin product handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	media *media.Store
}

// Handler is the admin product handler.
var Handler = Service{}

// Init initializes the admin product handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store *media.Store) error {
	if app == nil || cfg == nil || db == nil || store == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg
	s.media = store

	app.Post(Path, s.Create)
	app.Put(ItemPath, s.Update)
	app.Delete(ItemPath, s.Delete)

	return nil
}

// Create adds a product. An uploaded image overrides the imageUrl field.
func (s *Service) Create(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return handler.InvalidBody(c)
	}

	fields, err := form.fields()
	if err != nil {
		log.Error().Err(err).Msg("failed to create product")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	image, err := s.upload(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to store product image")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	p := &models.Product{
		Name:        fields.Name,
		Category:    fields.Category,
		Price:       fields.Price,
		Image:       form.ImageURL,
		Description: fields.Description,
	}
	if image != nil {
		p.Image = *image
	}

	if err = controller.Create(s.db.WithContext(c.UserContext()), p); err != nil {
		log.Error().Err(err).Msg("failed to create product")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	log.Info().Uint64("product_id", p.ID).Str("name", p.Name).Msg("product added")

	return handler.Message(c, handler.MsgAdded)
}

// Update overwrites the product fields. The image only changes when a new
// file is uploaded.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ErrMsgInvalidID)
	}

	form := new(Form)
	if err = c.BodyParser(form); err != nil {
		return handler.InvalidBody(c)
	}

	fields, err := form.fields()
	if err != nil {
		log.Error().Err(err).Uint64("product_id", id).Msg("failed to update product")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	image, err := s.upload(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to store product image")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	if err = controller.Update(s.db.WithContext(c.UserContext()), id, fields, image); err != nil {
		log.Error().Err(err).Uint64("product_id", id).Msg("failed to update product")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	log.Info().Uint64("product_id", id).Bool("new_image", image != nil).Msg("product updated")

	return handler.Message(c, handler.MsgUpdated)
}

// Delete removes the product. Unknown ids still answer Deleted.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ErrMsgInvalidID)
	}

	if err = controller.Delete(s.db.WithContext(c.UserContext()), id); err != nil {
		log.Error().Err(err).Uint64("product_id", id).Msg("failed to delete product")
		return handler.Error(c, fiber.StatusInternalServerError, handler.ErrMsgGeneric)
	}

	log.Info().Uint64("product_id", id).Msg("product deleted")

	return handler.Message(c, handler.MsgDeleted)
}

// upload stores the image file if the request carries one and returns its URL.
func (s *Service) upload(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile(ImageField)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}

		return nil, err //nolint:wrapcheck
	}

	url, err := s.media.Save(fh)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &url, nil
}
