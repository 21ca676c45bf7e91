package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hye2gold/Salendar/app/middleware"
	"github.com/hye2gold/Salendar/app/services"
	businessflow "github.com/hye2gold/Salendar/business_flow"
	"github.com/hye2gold/Salendar/utils"
)

func newAuthTestApp(t *testing.T) (*fiber.App, services.SessionService) {
	t.Helper()

	sessions, err := services.NewSessionService("admin", "admin-password", "")
	require.NoError(t, err)

	handler := NewAdminAuthHandler(businessflow.NewAdminAuthFlow(sessions), false)
	guard := middleware.NewAdminAuthMiddleware(sessions)

	app := fiber.New()
	admin := app.Group("/api/admin")
	admin.Post("/login", handler.Login)
	admin.Post("/logout", handler.Logout)
	admin.Use(guard.RequireSession())
	admin.Get("/brands", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin", guard.RequireSession(), func(c fiber.Ctx) error {
		return c.SendString("dashboard")
	})

	return app, sessions
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == utils.AdminSessionCookie {
			return cookie
		}
	}
	return nil
}

func TestAdminLoginHandler(t *testing.T) {
	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		app, sessions := newAuthTestApp(t)

		resp, err := app.Test(loginRequest(`{"username":"admin","password":"admin-password"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		cookie := sessionCookie(t, resp)
		require.NotNil(t, cookie, "login must set the session cookie")
		assert.Equal(t, sessions.Token(), cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotContains(t, string(body), cookie.Value, "the body never carries the token")
	})

	t.Run("wrong credentials yield 401 and no cookie", func(t *testing.T) {
		app, _ := newAuthTestApp(t)

		resp, err := app.Test(loginRequest(`{"username":"admin","password":"wrong"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Nil(t, sessionCookie(t, resp))

		var envelope errorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, "INVALID_CREDENTIALS", envelope.Error.Code)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		app, _ := newAuthTestApp(t)

		resp, err := app.Test(loginRequest(`{"username":"admin"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestAdminLogoutHandler(t *testing.T) {
	app, _ := newAuthTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/admin/logout", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()), "logout expires the cookie")
}

func TestRequireSession(t *testing.T) {
	t.Run("api path without a cookie gets 401 JSON", func(t *testing.T) {
		app, _ := newAuthTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/brands", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var envelope errorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
	})

	t.Run("valid cookie passes through", func(t *testing.T) {
		app, sessions := newAuthTestApp(t)

		req := httptest.NewRequest("GET", "/api/admin/brands", nil)
		req.AddCookie(&http.Cookie{Name: utils.AdminSessionCookie, Value: sessions.Token()})

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("tampered cookie is rejected", func(t *testing.T) {
		app, sessions := newAuthTestApp(t)

		req := httptest.NewRequest("GET", "/api/admin/brands", nil)
		req.AddCookie(&http.Cookie{Name: utils.AdminSessionCookie, Value: sessions.Token() + "x"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("page path without a cookie redirects to login", func(t *testing.T) {
		app, _ := newAuthTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
	})
}
