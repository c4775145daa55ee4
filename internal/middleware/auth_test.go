package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"fintrack/internal/config"
	"fintrack/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testUser() *models.User {
	return &models.User{
		Base:  models.Base{ID: "0198a1b2-0000-7000-8000-000000000001"},
		Email: "test@example.com",
	}
}

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("userID"),
			"email":   c.GetString("email"),
		})
	})
	return r
}

func doAuthRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", http.NoBody)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGenerateAndVerifyToken(t *testing.T) {
	user := testUser()

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected user ID %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, claims.Email)
	}
	window := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if window != config.Get().JWTExpirationDur {
		t.Errorf("expected validity window %v, got %v", config.Get().JWTExpirationDur, window)
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		if _, err := VerifyToken("not.a.token"); err == nil {
			t.Error("expected error for malformed token")
		}
	})

	t.Run("tampered_signature", func(t *testing.T) {
		token, err := GenerateToken(testUser())
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		if _, err := VerifyToken(token + "x"); err == nil {
			t.Error("expected error for tampered token")
		}
	})

	t.Run("wrong_key", func(t *testing.T) {
		claims := &JWTClaims{
			UserID: "someone",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-key"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		if _, err := VerifyToken(signed); err == nil {
			t.Error("expected error for token signed with a different key")
		}
	})

	t.Run("expired", func(t *testing.T) {
		now := time.Now()
		claims := &JWTClaims{
			UserID: "someone",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getJWTKey())
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		if _, err := VerifyToken(signed); err == nil {
			t.Error("expected error for expired token")
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid_token_reaches_handler", func(t *testing.T) {
		user := testUser()
		token, err := GenerateToken(user)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := doAuthRequest(setupAuthRouter(), "Bearer "+token)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := rec.Body.String()
		if !strings.Contains(body, user.ID) || !strings.Contains(body, user.Email) {
			t.Errorf("expected identity in context, got %s", body)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		token, err := GenerateToken(testUser())
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		tests := []struct {
			name   string
			header string
		}{
			{"missing_header", ""},
			{"no_bearer_prefix", token},
			{"wrong_scheme", "Basic " + token},
			{"tampered_token", "Bearer " + token + "x"},
			{"garbage_token", "Bearer not.a.token"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := doAuthRequest(setupAuthRouter(), tt.header)
				if rec.Code != http.StatusUnauthorized {
					t.Errorf("status = %d, want 401", rec.Code)
				}
			})
		}
	})
}
