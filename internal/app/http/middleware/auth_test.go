package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
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

func authCall(t *testing.T, authorization string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var gotUser string
	h := BearerAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/chat", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w, gotUser
}

func TestBearerAuthValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "user-1"})

	w, user := authCall(t, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if user != "user-1" {
		t.Errorf("UserID = %q, want user-1", user)
	}
}

func TestBearerAuthBarePrefixlessToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "user-2"})

	w, user := authCall(t, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if user != "user-2" {
		t.Errorf("UserID = %q, want user-2", user)
	}
}

func TestBearerAuthRejects(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"garbage token", "Bearer not-a-token"},
		{"missing sub claim", "Bearer " + signToken(t, jwt.MapClaims{"role": "admin"})},
		{"empty sub claim", "Bearer " + signToken(t, jwt.MapClaims{"sub": "  "})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := authCall(t, tt.authorization)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestBearerAuthRejectsWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"})
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	w, _ := authCall(t, "Bearer "+signed)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestUserIDEmptyWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := UserID(req.Context()); got != "" {
		t.Errorf("UserID = %q, want empty", got)
	}
}
