// Package handlertest contains helpers for exercising handlers through a
// fiber app in tests.
package handlertest

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/web/handler"
)

// NewApp returns a fiber app configured like the production one.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: handler.ErrorHandler,
	})
}

// Config returns a minimal valid configuration for handler tests.
func Config() *config.Config {
	return &config.Config{
		Webserver: config.Webserver{URL: "http://localhost:8081", Port: 8081},
		Media:     config.Media{Dir: "uploads", Prefix: "/uploads"},
	}
}

// Response is a fully read test response.
type Response struct {
	Status int
	Body   []byte
}

// Decode unmarshals the body into v.
func (r Response) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), "body: %s", r.Body)
}

// Do runs one request against app.
func Do(t *testing.T, app *fiber.App, method, target string, body io.Reader, contentType string) Response {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return Response{Status: resp.StatusCode, Body: data}
}

// JSON sends v encoded as JSON. A string v is sent verbatim.
func JSON(t *testing.T, app *fiber.App, method, target string, v interface{}) Response {
	t.Helper()

	if raw, ok := v.(string); ok {
		return Do(t, app, method, target, strings.NewReader(raw), fiber.MIMEApplicationJSON)
	}

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return Do(t, app, method, target, bytes.NewReader(data), fiber.MIMEApplicationJSON)
}

// File is one file part of a multipart request.
type File struct {
	Field   string
	Name    string
	Content []byte
}

// Multipart sends fields and an optional file as multipart/form-data.
func Multipart(t *testing.T, app *fiber.App, method, target string, fields map[string]string, file *File) Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if file != nil {
		part, err := w.CreateFormFile(file.Field, file.Name)
		require.NoError(t, err)
		_, err = part.Write(file.Content)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	return Do(t, app, method, target, &buf, w.FormDataContentType())
}

// Get runs a GET request.
func Get(t *testing.T, app *fiber.App, target string) Response {
	t.Helper()
	return Do(t, app, http.MethodGet, target, nil, "")
}
