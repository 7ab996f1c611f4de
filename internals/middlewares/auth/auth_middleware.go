// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"upkraft_backend/internals/configs"
	helperAuth "upkraft_backend/internals/helpers/auth"
)

// Public paths skipped by auth (health checks etc.)
var skipPaths = map[string]struct{}{
	"/health": {},
}

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		storeClaimsToLocals(c, claims)

		if c.Locals(helperAuth.LocalsUserID) == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		return c.Next()
	}
}

// extractBearerToken reads Authorization: Bearer ... first, then the
// `token` cookie (browser clients).
func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", fmt.Errorf("invalid Authorization header format")
	}
	if cookie := strings.TrimSpace(c.Cookies("token")); cookie != "" {
		return cookie, nil
	}
	return "", fmt.Errorf("missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fmt.Errorf("invalid exp claim")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return fmt.Errorf("token expired at %s", exp)
	}
	return nil
}

// storeClaimsToLocals copies the identity claims into c.Locals so
// handlers never touch the raw token again. The optional `act_as`
// claim is the signed delegation: when present, calendar and class
// operations run under that identity.
func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["user_id"].(string); ok && strings.TrimSpace(v) != "" {
		c.Locals(helperAuth.LocalsUserID, v)
	} else if v, ok := claims["sub"].(string); ok && strings.TrimSpace(v) != "" {
		c.Locals(helperAuth.LocalsUserID, v)
	}
	if v, ok := claims["act_as"].(string); ok && strings.TrimSpace(v) != "" {
		c.Locals(helperAuth.LocalsActingAs, v)
	}
	if v, ok := claims["role"].(string); ok {
		c.Locals(helperAuth.LocalsRole, v)
	}
	if v, ok := claims["user_name"].(string); ok {
		c.Locals(helperAuth.LocalsUserName, v)
	}
}
