// Package settings handles bulk updates of the store settings from the
// back office.
package settings

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/db/controller/setting"
	"github.com/northsupermart/storefront/internal/web/handler"
)

const (
	// Path is the path of the admin settings endpoint.
	Path = handler.AdminPath + "/settings"

	errMsgUpdateFailed = "failed to update settings"
)

// Service is the admin settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin settings handler.
var Handler = Service{}

// Init initializes the admin settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, s.Post)

	return nil
}

// Post upserts every key of the submitted object concurrently. Keys that
// were written stay written when others fail.
func (s *Service) Post(c *fiber.Ctx) error {
	values, err := decode(c.Body())
	if err != nil {
		log.Debug().Err(err).Msg("failed to parse settings body")
		return handler.InvalidBody(c)
	}

	if err = setting.SetMany(s.db.WithContext(c.UserContext()), values); err != nil {
		resp := handler.ErrorResponse{Error: errMsgUpdateFailed}

		var batchErr *setting.BatchError
		if errors.As(err, &batchErr) {
			resp.Failed = batchErr.Failed
		}

		log.Error().Err(err).Strs("failed", resp.Failed).Msg("failed to update settings")

		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}

	log.Info().Int("count", len(values)).Msg("settings updated")

	return handler.Message(c, handler.MsgSettingsUpdated)
}

// decode turns a flat JSON object into setting values. Strings are stored
// as is, null as an empty string and any other value as its JSON text.
// An empty body is an empty update.
func decode(body []byte) (map[string]string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]string{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err //nolint:wrapcheck
	}

	values := make(map[string]string, len(raw))

	for key, v := range raw {
		trimmed := bytes.TrimSpace(v)

		switch {
		case bytes.Equal(trimmed, []byte("null")):
			values[key] = ""
		case len(trimmed) > 0 && trimmed[0] == '"':
			var str string
			if err := json.Unmarshal(trimmed, &str); err != nil {
				return nil, err //nolint:wrapcheck
			}
			values[key] = str
		default:
			values[key] = string(trimmed)
		}
	}

	return values, nil
}
