// middleware/auth.go - Guest identity tokens
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"herodle/services"
	"herodle/utils"
)

func jwtSecret() []byte {
	return []byte(utils.Getenv("JWT_SECRET", "herodle-secret-change-in-production"))
}

// IssueGuestToken signs a token whose claims name the guest's collection key.
// There are no accounts or passwords; the token only keeps a browser pointed
// at the same collection across requests.
func IssueGuestToken(collectionKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"collection_key": collectionKey,
		"is_guest":       true,
		"exp":            time.Now().Add(30 * 24 * time.Hour).Unix(),
	})
	return token.SignedString(jwtSecret())
}

// CollectionKeyMiddleware resolves which collection a request operates on.
// A valid guest token selects its own key; everything else falls back to the
// fixed default player key, so the endpoints work without any token at all.
func CollectionKeyMiddleware(c *fiber.Ctx) error {
	c.Locals("collectionKey", services.DefaultUserKey)

	tokenString := bearerToken(c)
	if tokenString == "" {
		return c.Next()
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		// Invalid or expired token - fall back to the default collection
		return c.Next()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Next()
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return c.Next()
	}

	if key, ok := claims["collection_key"].(string); ok && key != "" {
		c.Locals("collectionKey", key)
	}

	return c.Next()
}

// CollectionKey returns the collection key resolved for this request.
func CollectionKey(c *fiber.Ctx) string {
	if key, ok := c.Locals("collectionKey").(string); ok && key != "" {
		return key
	}
	return services.DefaultUserKey
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
