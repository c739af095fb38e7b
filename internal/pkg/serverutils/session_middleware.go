package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "lira_session"
	sessionLocalKey   = "session_id"
	sessionCookieAge  = 7 * 24 * 60 * 60 // seconds
)

// SessionMiddleware reads the signed session cookie and exposes the session
// id via Locals. A missing or tampered cookie gets a freshly minted id.
func SessionMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if id, ok := parseSessionToken(ctx.Cookies(sessionCookieName), secret); ok {
			ctx.Locals(sessionLocalKey, id)
			return ctx.Next()
		}

		id := uuid.NewString()
		token, err := signSessionToken(id, secret)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create session")
		}

		ctx.Cookie(&fiber.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			MaxAge:   sessionCookieAge,
			HTTPOnly: true,
			SameSite: "Lax",
		})
		ctx.Locals(sessionLocalKey, id)
		return ctx.Next()
	}
}

// SessionID returns the session id set by SessionMiddleware.
func SessionID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(sessionLocalKey).(string); ok {
		return id
	}
	return ""
}

func signSessionToken(sessionID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
	})
	return token.SignedString([]byte(secret))
}

func parseSessionToken(tokenStr, secret string) (string, bool) {
	if tokenStr == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
