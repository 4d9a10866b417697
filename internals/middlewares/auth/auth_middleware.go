// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"kisahsukses_backend/internals/configs"
)

// Role yang boleh masuk grup admin (editor konten & admin penuh).
var allowedRoles = map[string]struct{}{
	"admin":  {},
	"editor": {},
}

// AdminAuth memverifikasi bearer JWT dan role-nya sebelum masuk
// ke route admin. Route publik tidak lewat middleware ini.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		role, _ := claims["role"].(string)
		if _, ok := allowedRoles[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - Role tidak diizinkan")
		}

		if uid, ok := claims["user_id"].(string); ok {
			c.Locals("user_id", uid)
		}
		c.Locals("role", role)

		return c.Next()
	}
}

// extractBearerToken ambil token dari header Authorization
// atau fallback cookie "access_token".
func extractBearerToken(c *fiber.Ctx) (string, error) {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, prefix) {
		if tok := strings.TrimSpace(auth[len(prefix):]); tok != "" {
			return tok, nil
		}
	}
	if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
		return tok, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Missing bearer token")
}

// validateTokenExpiry validasi klaim exp dengan sedikit leeway
// (toleransi clock skew antar server).
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
	}
	return nil
}
