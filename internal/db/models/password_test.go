package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cr3t")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, argon2idPrefix))
	assert.NotContains(t, hash, "s3cr3t")

	assert.True(t, VerifyPassword("s3cr3t", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestVerifyPassword_LegacyPlaintext(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		stored   string
		want     bool
	}{
		{"matching plaintext", "hunter2", "hunter2", true},
		{"different plaintext", "hunter2", "hunter3", false},
		{"empty stored value never matches", "", "", false},
		{"broken hash", "x", "$argon2id$garbage", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VerifyPassword(tc.password, tc.stored))
		})
	}
}

func TestUserJSONNeverCarriesPassword(t *testing.T) {
	u := User{ID: 1, Name: "Ali", Email: "ali@example.com", Password: "secret"}
	a := Admin{ID: 1, Username: "root", Password: "secret"}

	for _, v := range []interface{}{u, a} {
		out, err := json.Marshal(v)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "secret")
		assert.NotContains(t, string(out), "password")
	}

	assert.True(t, u.VerifyPassword("secret"))
	assert.True(t, a.VerifyPassword("secret"))
}
