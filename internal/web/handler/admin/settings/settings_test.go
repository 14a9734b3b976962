package settings

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northsupermart/storefront/internal/db/controller/setting"
	"github.com/northsupermart/storefront/internal/db/dbtest"
	"github.com/northsupermart/storefront/internal/web/handler"
	"github.com/northsupermart/storefront/internal/web/handler/handlertest"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    map[string]string
		wantErr bool
	}{
		{"empty body", "", map[string]string{}, false},
		{"empty object", "{}", map[string]string{}, false},
		{
			name: "mixed value types",
			body: `{"store_name":"North \"Super\" Mart","delivery_fee":150,"open":true,"banner":null,"tags":["a","b"]}`,
			want: map[string]string{
				"store_name":   `North "Super" Mart`,
				"delivery_fee": "150",
				"open":         "true",
				"banner":       "",
				"tags":         `["a","b"]`,
			},
		},
		{"not an object", `["a"]`, nil, true},
		{"malformed", `{"a":`, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decode([]byte(tc.body))
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPost(t *testing.T) {
	db := dbtest.New(t)
	app := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.Config(), db))

	require.NoError(t, setting.Set(db, "store_name", "Old Mart"))

	resp := handlertest.JSON(t, app, http.MethodPost, Path, `{"store_name":"North Supermart","delivery_fee":150}`)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"message":"Settings updated"}`, string(resp.Body))

	got, err := setting.Map(db)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"store_name": "North Supermart", "delivery_fee": "150"}, got)
}

func TestPost_ManyKeysIdempotent(t *testing.T) {
	db := dbtest.New(t)
	app := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.Config(), db))

	pairs := make([]string, 0, 30)
	want := make(map[string]string, 30)
	for i := range 30 {
		pairs = append(pairs, fmt.Sprintf(`"k%d":"v%d"`, i, i))
		want[fmt.Sprintf("k%d", i)] = fmt.Sprintf("v%d", i)
	}
	body := "{" + strings.Join(pairs, ",") + "}"

	for range 2 {
		resp := handlertest.JSON(t, app, http.MethodPost, Path, body)
		require.Equal(t, http.StatusOK, resp.Status)

		got, err := setting.Map(db)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPost_EmptyPayload(t *testing.T) {
	db := dbtest.New(t)
	app := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.Config(), db))

	resp := handlertest.JSON(t, app, http.MethodPost, Path, `{}`)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"message":"Settings updated"}`, string(resp.Body))
}

func TestPost_PartialFailure(t *testing.T) {
	db := dbtest.New(t)
	app := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.Config(), db))

	resp := handlertest.JSON(t, app, http.MethodPost, Path, `{"":"broken","currency":"PKR"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)

	var out handler.ErrorResponse
	resp.Decode(t, &out)
	assert.Equal(t, "failed to update settings", out.Error)
	assert.Equal(t, []string{""}, out.Failed)

	got, err := setting.Map(db)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"currency": "PKR"}, got)
}

func TestPost_MalformedBody(t *testing.T) {
	db := dbtest.New(t)
	app := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.Config(), db))

	resp := handlertest.JSON(t, app, http.MethodPost, Path, `{"a":`)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.JSONEq(t, `{"error":"invalid request body"}`, string(resp.Body))
}
