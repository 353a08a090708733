package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/models"
)

const (
	ctxUserID = "auth.user_id"
	ctxEmail  = "auth.email"
	ctxRole   = "auth.role"
)

// TokenIssuer signs and verifies the HS256 bearer tokens the API uses.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer from auth configuration.
func NewTokenIssuer(cfg *config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Claims is the verified identity carried by a bearer token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// Admin reports whether the token belongs to an admin account.
func (c *Claims) Admin() bool { return c.Role == "admin" }

// Issue signs a token for the user.
func (t *TokenIssuer) Issue(user *models.UserView) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(t.ttl)

	tok, err := jwt.NewBuilder().
		Subject(user.ID).
		IssuedAt(now).
		Expiration(expires).
		Claim("email", user.Email).
		Claim("role", user.Role).
		Build()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, t.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return string(signed), expires, nil
}

// Parse verifies a token's signature and expiry and extracts the claims.
func (t *TokenIssuer) Parse(token string) (*Claims, error) {
	tok, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, t.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims := &Claims{UserID: tok.Subject()}
	if v, ok := tok.Get("email"); ok {
		claims.Email, _ = v.(string)
	}
	if v, ok := tok.Get("role"); ok {
		claims.Role, _ = v.(string)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}

// bearerToken extracts the token from the Authorization header, falling
// back to the token query parameter for the WebSocket handshake where
// browsers cannot set headers.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, found := strings.CutPrefix(h, "Bearer "); found {
			return token
		}
		return ""
	}
	return c.Query("token")
}

// requireAuth rejects requests without a valid bearer token and stores the
// verified claims on the request context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, CodeUnauthorized, "missing bearer token")
			return
		}
		claims, err := s.tokens.Parse(token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, CodeUnauthorized, "invalid or expired token")
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// currentUser reads the verified claims a requireAuth middleware stored.
func currentUser(c *gin.Context) *Claims {
	return &Claims{
		UserID: c.GetString(ctxUserID),
		Email:  c.GetString(ctxEmail),
		Role:   c.GetString(ctxRole),
	}
}
