package daemon

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/db/controller/admin"
)

const defaultAdminUsername = "admin"

// seed creates the admin account if the admins table is empty.
func seed(cfg *config.Config, db *gorm.DB) error {
	count, err := admin.Count(db)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}

	if count > 0 {
		return nil
	}

	username := cfg.Admin.Username
	if username == "" {
		username = defaultAdminUsername
	}

	password := cfg.Admin.Password
	generated := password == ""
	if generated {
		password = uuid.NewString()
	}

	if _, err = admin.Create(db, username, password); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	if generated {
		log.Warn().Str("username", username).Str("password", password).Msg("created admin account with generated password, change it")
	} else {
		log.Info().Str("username", username).Msg("created admin account")
	}

	return nil
}
