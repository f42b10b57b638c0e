package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string  `json:"name" validate:"required,max=10"`
	Price int     `json:"price_hkd" validate:"gte=0"`
	Lat   float64 `json:"latitude" validate:"latitude"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Name: "drill", Price: 10, Lat: 22.3}))

	err := ValidateRequest(sampleRequest{Price: -1, Lat: 91})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "is required", vErr.Fields["name"])
	assert.Equal(t, "must be at least 0", vErr.Fields["price_hkd"])
	assert.Contains(t, vErr.Fields, "latitude")
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/validation", func(ctx *fiber.Ctx) error {
		return ValidateRequest(sampleRequest{})
	})
	app.Get("/fiber", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	})
	app.Get("/plain", func(ctx *fiber.Ctx) error {
		return errors.New("db down")
	})

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{"/validation", 400, "Validation failed"},
		{"/fiber", 404, "Product not found"},
		{"/plain", 500, "db down"},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.code, resp.StatusCode, tt.path)

		body := decode(t, resp.Body)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, tt.message, body["message"])
	}
}

func signedToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": "a1",
		"username": "owner",
		"exp":      exp.Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJwtMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/private", JwtMiddleware("s3cret"), func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals("username").(string))
	})

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", 401},
		{"not bearer", "Basic abc", 401},
		{"wrong secret", "Bearer " + signedToken(t, "other", time.Now().Add(time.Hour)), 401},
		{"expired", "Bearer " + signedToken(t, "s3cret", time.Now().Add(-time.Hour)), 401},
		{"valid", "Bearer " + signedToken(t, "s3cret", time.Now().Add(time.Hour)), 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
			if tt.code == 200 {
				b, _ := io.ReadAll(resp.Body)
				assert.Equal(t, "owner", string(b))
			}
		})
	}
}
