package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"upkraft_backend/internals/configs"
	helperAuth "upkraft_backend/internals/helpers/auth"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// probe app: echoes the effective actor resolved from the token
func newProbeApp() *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware())
	app.Get("/probe", func(c *fiber.Ctx) error {
		actor, err := helperAuth.ResolveActorID(c)
		if err != nil {
			return err
		}
		return c.SendString(actor.String())
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = testSecret

	const subject = "7d9f1a43-93c8-4f34-9a7e-111111111111"
	const delegateTarget = "7d9f1a43-93c8-4f34-9a7e-222222222222"

	t.Run("missing token is rejected", func(t *testing.T) {
		app := newProbeApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("bearer token resolves the subject", func(t *testing.T) {
		app := newProbeApp()
		token := signToken(t, jwt.MapClaims{
			"user_id": subject,
			"role":    "tutor",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != subject {
			t.Fatalf("actor = %s, want subject %s", body, subject)
		}
	})

	t.Run("cookie token is accepted", func(t *testing.T) {
		app := newProbeApp()
		token := signToken(t, jwt.MapClaims{
			"user_id": subject,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Cookie", "token="+token)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("act_as claim swaps the effective identity", func(t *testing.T) {
		app := newProbeApp()
		token := signToken(t, jwt.MapClaims{
			"user_id": subject,
			"act_as":  delegateTarget,
			"role":    "admin",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != delegateTarget {
			t.Fatalf("actor = %s, want delegated %s", body, delegateTarget)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		app := newProbeApp()
		token := signToken(t, jwt.MapClaims{
			"user_id": subject,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("wrong signature is rejected", func(t *testing.T) {
		app := newProbeApp()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": subject,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, _ := token.SignedString([]byte("other-secret"))
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+signed)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("health path skips auth", func(t *testing.T) {
		app := fiber.New()
		app.Use(AuthMiddleware())
		app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
	})
}
