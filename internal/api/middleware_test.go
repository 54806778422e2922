package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"mindful/media-admin/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role domain.Role, expiry time.Duration) string {
	t.Helper()
	claims := jwtClaims{
		UserID: "64a1f0c2e4b0a1b2c3d4e5f6",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func protectedRouter() *gin.Engine {
	router := gin.New()
	router.DELETE("/exercises/:id",
		AuthMiddleware(testSecret),
		RoleMiddleware(domain.RoleAdmin),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "ok"}) })
	return router
}

func TestAuthMiddleware(t *testing.T) {
	router := protectedRouter()

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no_header", "", http.StatusUnauthorized},
		{"malformed", "Token abc", http.StatusUnauthorized},
		{"garbage_token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, domain.RoleAdmin, -time.Minute), http.StatusUnauthorized},
		{"member_role", "Bearer " + signToken(t, domain.RoleMember, time.Hour), http.StatusForbidden},
		{"admin", "Bearer " + signToken(t, domain.RoleAdmin, time.Hour), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/exercises/64a1f0c2e4b0a1b2c3d4e5f6", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}
