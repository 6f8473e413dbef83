package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func protectedHandler(t *testing.T, gotID *int) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetPlayerIDFromContext(r.Context())
		if err != nil {
			t.Errorf("extract player id: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		*gotID = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	t.Parallel()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 42,
		"name":    "john_doe",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var gotID int
	handler := Authenticate(testSecret)(protectedHandler(t, &gotID))

	req := httptest.NewRequest(http.MethodGet, "/me/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 42 {
		t.Fatalf("expected player id 42, got %d", gotID)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	t.Parallel()

	expired := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong signing key", header: "Bearer " + wrongKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := Authenticate(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler should not be reached")
			}))

			req := httptest.NewRequest(http.MethodGet, "/me/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not valid JSON: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("expected an error message in response body")
			}
		})
	}
}

func TestGetPlayerIDFromContext_InvalidClaims(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{name: "missing user_id", claims: jwt.MapClaims{"name": "john_doe"}},
		{name: "non-numeric user_id", claims: jwt.MapClaims{"user_id": "42"}},
		{name: "fractional user_id", claims: jwt.MapClaims{"user_id": 4.2}},
		{name: "non-positive user_id", claims: jwt.MapClaims{"user_id": 0.0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me/", nil)
			ctx := context.WithValue(req.Context(), playerContextKey, tc.claims)
			if _, err := GetPlayerIDFromContext(ctx); err == nil {
				t.Fatal("expected an error")
			}
		})
	}

	if _, err := GetPlayerIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()); err == nil {
		t.Fatal("expected an error for a context without claims")
	}
}
