package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "healthcard_backend/internals/helpers"
)

const testSecret = "test-secret"

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthJWT(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true}), func(c *fiber.Ctx) error {
		id, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromAppError(c, err)
		}
		return c.SendString(id.String())
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestAuthJWTRejectsMissingToken(t *testing.T) {
	resp, err := newAuthApp().Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthJWTRejectsWrongSecret(t *testing.T) {
	tok := signToken(t, jwt.MapClaims{"id": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix()}, "other")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := newAuthApp().Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthJWTHydratesUserID(t *testing.T) {
	uid := uuid.New()
	tok := signToken(t, jwt.MapClaims{"sub": uid.String(), "exp": time.Now().Add(time.Hour).Unix()}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})

	resp, err := newAuthApp().Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthJWTRejectsNonUUIDSubject(t *testing.T) {
	tok := signToken(t, jwt.MapClaims{"sub": "alice"}, testSecret)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := newAuthApp().Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
