// Package auth provides JWT-based authentication middleware for Fiber.
//
// Tokens are issued by the auth feature and verified here. A token is
// accepted either as a Bearer token in the Authorization header or from the
// session cookie. Verified claims (subject and role) are stored in request
// locals for downstream handlers.
package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie holding the JWT.
const CookieName = "icoltex_auth"

// Roles recognized in token claims.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claims is the JWT payload carried by hub tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Config configures the auth middleware.
type Config struct {
	// Secret is the HMAC signing key.
	Secret string
	// Role restricts access to tokens carrying this role. Empty allows any
	// authenticated subject.
	Role string
}

// NewToken issues a signed HS256 token for the given subject and role.
func NewToken(secret, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies a token string and returns its claims.
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// New creates the auth middleware.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		claims, err := ParseToken(cfg.Secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		if cfg.Role != "" && claims.Role != cfg.Role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient permissions",
			})
		}

		c.Locals("auth_subject", claims.Subject)
		c.Locals("auth_role", claims.Role)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Cookies(CookieName)
}
