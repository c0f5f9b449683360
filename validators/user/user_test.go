package uservalidator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorOf(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

func TestRegisterValidatorFirstErrorOnly(t *testing.T) {
	config.LoadConfig()

	app := fiber.New()
	app.Post("/register", Register(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Several constraints fail; only the first one is reported
	resp := postJSON(t, app, "/register", fiber.Map{
		"name":     "Al",
		"email":    "nope",
		"password": "x",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name must be at least 5 characters long!", errorOf(t, resp))

	resp = postJSON(t, app, "/register", fiber.Map{
		"email":    "alice@x.com",
		"password": "Str0ng!Pass",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name is required!", errorOf(t, resp))

	resp = postJSON(t, app, "/register", fiber.Map{
		"name":     "Alice Smith",
		"email":    "nope",
		"password": "Str0ng!Pass",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid email!", errorOf(t, resp))
}

func TestPasswordStrengthBands(t *testing.T) {
	// Single character class never makes it past weak
	assert.Equal(t, 0, passwordStrengthID("password"))
	assert.Equal(t, 0, passwordStrengthID("12345678"))
	assert.Equal(t, 0, passwordStrengthID("PASSWORDPASSWORD"))

	// Diverse but too short
	assert.Equal(t, 0, passwordStrengthID("aB1!"))

	assert.Equal(t, 1, passwordStrengthID("abc123"))
	assert.Equal(t, 2, passwordStrengthID("aB3$efgh"))
	assert.Equal(t, 3, passwordStrengthID("Str0ng!Pass"))
	assert.Equal(t, 3, passwordStrengthID("Adm1n!Secret"))
}

func TestRegisterValidatorStrengthStage(t *testing.T) {
	config.LoadConfig()

	app := fiber.New()
	app.Post("/register", Register(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Long enough for the schema, still too guessable
	resp := postJSON(t, app, "/register", fiber.Map{
		"name":     "Alice Smith",
		"email":    "alice@x.com",
		"password": "12345678",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Password is too weak", errorOf(t, resp))

	resp = postJSON(t, app, "/register", fiber.Map{
		"name":     "Alice Smith",
		"email":    "alice@x.com",
		"password": "passwordpassword",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Password is too weak", errorOf(t, resp))

	resp = postJSON(t, app, "/register", fiber.Map{
		"name":     "Alice Smith",
		"email":    "alice@x.com",
		"password": "Str0ng!Pass",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdateProfileValidatorOptionalFields(t *testing.T) {
	config.LoadConfig()

	app := fiber.New()
	app.Put("/profile", UpdateProfile(), func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedUpdateProfile").(*UpdateProfileRequest)
		return c.JSON(fiber.Map{
			"hasName":  reqData.Name != nil,
			"hasEmail": reqData.Email != nil,
		})
	})

	body, err := json.Marshal(fiber.Map{"name": "Alicia Jones"})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out["hasName"])
	assert.False(t, out["hasEmail"])
}
