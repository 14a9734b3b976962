package settings

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northsupermart/storefront/internal/db/controller/setting"
	"github.com/northsupermart/storefront/internal/db/dbtest"
	"github.com/northsupermart/storefront/internal/db/models"
	"github.com/northsupermart/storefront/internal/web/handler"
	"github.com/northsupermart/storefront/internal/web/handler/handlertest"
)

func TestInit_NilDependencies(t *testing.T) {
	var s Service
	require.ErrorIs(t, s.Init(nil, handlertest.Config(), dbtest.New(t)), handler.ErrNilDependency)
}

func TestGet(t *testing.T) {
	db := dbtest.New(t)
	app := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.Config(), db))

	resp := handlertest.Get(t, app, Path)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{}`, string(resp.Body))

	require.NoError(t, setting.Set(db, "store_name", "North Supermart"))
	require.NoError(t, setting.Set(db, "delivery_fee", "150"))

	resp = handlertest.Get(t, app, Path)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"store_name":"North Supermart","delivery_fee":"150"}`, string(resp.Body))
}

func TestGet_QueryError(t *testing.T) {
	db := dbtest.New(t)
	app := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.Config(), db))
	require.NoError(t, db.Migrator().DropTable(&models.StoreSetting{}))

	resp := handlertest.Get(t, app, Path)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.JSONEq(t, `{"error":"Error"}`, string(resp.Body))
}
