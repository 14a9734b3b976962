package models

import (
	"crypto/subtle"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

const argon2idPrefix = "$argon2id$"

// HashPassword hashes a plaintext password using the Argon2id algorithm
// with the default parameters.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck
}

// VerifyPassword compares password with stored in constant time.
// Values without the argon2id prefix are legacy plaintext rows and are
// compared as is.
func VerifyPassword(password, stored string) bool {
	if !strings.HasPrefix(stored, argon2idPrefix) {
		return stored != "" && subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
	}

	match, err := argon2id.ComparePasswordAndHash(password, stored)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify password")
		return false
	}

	return match
}

// All returns every model for auto migration.
func All() []interface{} {
	return []interface{}{
		&StoreSetting{},
		&Product{},
		&User{},
		&Message{},
		&Order{},
		&Admin{},
	}
}
