package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func studentClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       "u1",
		"email":     "ama@example.edu",
		"full_name": "Ama Owusu",
		"role":      "student",
		"level":     "100 ICT",
		"exp":       exp.Unix(),
	}
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/timetable/agenda", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.SigningMethodHS256, studentClaims(time.Now().Add(time.Hour)))

	rec, c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if got, _ := c.Get("user_id").(string); got != "u1" {
		t.Errorf("user_id = %q", got)
	}
	if got, _ := c.Get("role").(string); got != "student" {
		t.Errorf("role = %q", got)
	}
	if got, _ := c.Get("level").(string); got != "100 ICT" {
		t.Errorf("level = %q", got)
	}
	if got, _ := c.Get("full_name").(string); got != "Ama Owusu" {
		t.Errorf("full_name = %q", got)
	}
}

func TestAuth_Rejections(t *testing.T) {
	expired := signToken(t, testSecret, jwt.SigningMethodHS256, studentClaims(time.Now().Add(-time.Hour)))
	wrongKey := signToken(t, "other-secret", jwt.SigningMethodHS256, studentClaims(time.Now().Add(time.Hour)))

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runAuth(t, tc.header)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", httpErr.Code)
			}
		})
	}
}

func TestAuth_RejectsUnexpectedAlgorithm(t *testing.T) {
	// alg=none style downgrade must not pass, even with a parsable body.
	claims := studentClaims(time.Now().Add(time.Hour))
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, _, authErr := runAuth(t, "Bearer "+token)
	httpErr, ok := authErr.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", authErr)
	}
}
