package product

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/db/dbtest"
	"github.com/northsupermart/storefront/internal/db/models"
	"github.com/northsupermart/storefront/internal/media"
	"github.com/northsupermart/storefront/internal/web/handler/handlertest"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	dir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := handlertest.Config()
	cfg.Media.Dir = t.TempDir()

	store := media.New(cfg)
	require.NoError(t, store.Init())

	env := &testEnv{
		app: handlertest.NewApp(),
		db:  dbtest.New(t),
		dir: cfg.Media.Dir,
	}

	var s Service
	require.NoError(t, s.Init(env.app, cfg, env.db, store))

	return env
}

func (env *testEnv) product(t *testing.T) models.Product {
	t.Helper()

	var products []models.Product
	require.NoError(t, env.db.Find(&products).Error)
	require.Len(t, products, 1)

	return products[0]
}

func TestInit_RequiresMediaStore(t *testing.T) {
	var s Service
	require.Error(t, s.Init(handlertest.NewApp(), handlertest.Config(), dbtest.New(t), nil))
}

func TestCreate_WithUpload(t *testing.T) {
	env := newTestEnv(t)

	resp := handlertest.Multipart(t, env.app, http.MethodPost, Path, map[string]string{
		"name":        "Basmati Rice",
		"category":    "Grocery",
		"price":       "1850.50",
		"description": "5kg bag",
		"imageUrl":    "https://cdn.example.com/ignored.jpg",
	}, &handlertest.File{Field: ImageField, Name: "rice.jpg", Content: []byte("jpeg")})
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"message":"Added"}`, string(resp.Body))

	p := env.product(t)
	assert.Equal(t, "Basmati Rice", p.Name)
	assert.InDelta(t, 1850.5, p.Price, 0.0001)
	assert.True(t, strings.HasPrefix(p.Image, "http://localhost:8081/uploads/"), p.Image)
	assert.True(t, strings.HasSuffix(p.Image, ".jpg"), p.Image)

	data, err := os.ReadFile(filepath.Join(env.dir, filepath.Base(p.Image)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestCreate_WithoutUploadUsesImageURL(t *testing.T) {
	env := newTestEnv(t)

	resp := handlertest.Multipart(t, env.app, http.MethodPost, Path, map[string]string{
		"name":     "Tea",
		"price":    "650",
		"imageUrl": "https://cdn.example.com/tea.jpg",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.Status)

	assert.Equal(t, "https://cdn.example.com/tea.jpg", env.product(t).Image)
}

func TestCreate_JSONBody(t *testing.T) {
	env := newTestEnv(t)

	resp := handlertest.JSON(t, env.app, http.MethodPost, Path, Form{Name: "Soap", Price: "120", ImageURL: "https://cdn/soap.png"})
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "https://cdn/soap.png", env.product(t).Image)
}

func TestCreate_PriceAsText(t *testing.T) {
	testCases := []struct {
		name  string
		send  func(t *testing.T, env *testEnv) handlertest.Response
		price float64
	}{
		{
			name: "multipart with thousands separator",
			send: func(t *testing.T, env *testEnv) handlertest.Response {
				return handlertest.Multipart(t, env.app, http.MethodPost, Path,
					map[string]string{"name": "Ghee", "price": "1,200"}, nil)
			},
			price: 1200,
		},
		{
			name: "json string",
			send: func(t *testing.T, env *testEnv) handlertest.Response {
				return handlertest.JSON(t, env.app, http.MethodPost, Path, `{"name":"Ghee","price":"99.50"}`)
			},
			price: 99.5,
		},
		{
			name: "json number",
			send: func(t *testing.T, env *testEnv) handlertest.Response {
				return handlertest.JSON(t, env.app, http.MethodPost, Path, `{"name":"Ghee","price":99.5}`)
			},
			price: 99.5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			resp := tc.send(t, env)
			require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))
			assert.JSONEq(t, `{"message":"Added"}`, string(resp.Body))
			assert.InDelta(t, tc.price, env.product(t).Price, 0.0001)
		})
	}
}

func TestCreate_NonNumericPrice(t *testing.T) {
	env := newTestEnv(t)

	resp := handlertest.Multipart(t, env.app, http.MethodPost, Path, map[string]string{"name": "Ghee", "price": "cheap"}, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.JSONEq(t, `{"error":"Error"}`, string(resp.Body))

	var n int64
	require.NoError(t, env.db.Model(&models.Product{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t)

	p := &models.Product{Name: "Tea", Category: "Drinks", Price: 500, Image: "https://cdn/old.jpg"}
	require.NoError(t, env.db.Create(p).Error)
	target := Path + "/" + strconv.FormatUint(p.ID, 10)

	// no file keeps the stored image, even when imageUrl is sent
	resp := handlertest.Multipart(t, env.app, http.MethodPut, target, map[string]string{
		"name":     "Green Tea",
		"category": "Beverages",
		"price":    "650",
		"imageUrl": "https://cdn/ignored.jpg",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"message":"Updated"}`, string(resp.Body))

	got := env.product(t)
	assert.Equal(t, "Green Tea", got.Name)
	assert.Equal(t, "Beverages", got.Category)
	assert.Equal(t, "https://cdn/old.jpg", got.Image)

	resp = handlertest.Multipart(t, env.app, http.MethodPut, target, map[string]string{
		"name":  "Green Tea",
		"price": "700",
	}, &handlertest.File{Field: ImageField, Name: "tea.png", Content: []byte("png")})
	assert.Equal(t, http.StatusOK, resp.Status)

	got = env.product(t)
	assert.InDelta(t, 700.0, got.Price, 0.0001)
	assert.True(t, strings.HasPrefix(got.Image, "http://localhost:8081/uploads/"), got.Image)
	assert.True(t, strings.HasSuffix(got.Image, ".png"), got.Image)
}

func TestUpdate_UnknownAndInvalidID(t *testing.T) {
	env := newTestEnv(t)

	resp := handlertest.Multipart(t, env.app, http.MethodPut, Path+"/404", map[string]string{"name": "x", "price": "1"}, nil)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"message":"Updated"}`, string(resp.Body))

	resp = handlertest.Multipart(t, env.app, http.MethodPut, Path+"/abc", map[string]string{"name": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)

	p := &models.Product{Name: "Tea"}
	require.NoError(t, env.db.Create(p).Error)

	for _, target := range []string{Path + "/" + strconv.FormatUint(p.ID, 10), Path + "/9999"} {
		resp := handlertest.Do(t, env.app, http.MethodDelete, target, nil, "")
		assert.Equal(t, http.StatusOK, resp.Status, target)
		assert.JSONEq(t, `{"message":"Deleted"}`, string(resp.Body), target)
	}

	var count int64
	require.NoError(t, env.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)

	resp := handlertest.Do(t, env.app, http.MethodDelete, Path+"/nope", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.Status)
}
