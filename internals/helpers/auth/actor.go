// file: internals/helpers/auth/actor.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =========================
   Actor resolution
   =========================

   AuthMiddleware verifies the JWT once and stores the identity claims
   in c.Locals. Everything below only reads Locals — no re-parsing.

   A delegate (support staff) operating a tutor's calendar carries a
   signed `act_as` claim in its own token. ResolveActorID returns that
   identity when present, so every calendar/class operation runs under
   the tutor's boundary without re-authentication. */

const (
	LocalsUserID   = "user_id"
	LocalsActingAs = "acting_as"
	LocalsRole     = "role"
	LocalsUserName = "user_name"
)

// GetUserIDFromToken returns the authenticated identity (the token
// subject), ignoring any acting-as delegation.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocalsUserID).(string)
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user ID missing from token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user ID in token")
	}
	return id, nil
}

// ResolveActorID returns the effective identity for this request:
// the acting-as claim when the token carries one, else the subject.
func ResolveActorID(c *fiber.Ctx) (uuid.UUID, error) {
	if raw, _ := c.Locals(LocalsActingAs).(string); strings.TrimSpace(raw) != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid acting-as ID in token")
		}
		return id, nil
	}
	return GetUserIDFromToken(c)
}

// IsImpersonating reports whether the request runs under a delegated
// identity rather than the token subject's own.
func IsImpersonating(c *fiber.Ctx) bool {
	raw, _ := c.Locals(LocalsActingAs).(string)
	return strings.TrimSpace(raw) != ""
}

func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalsRole).(string)
	return role
}

func IsAdmin(c *fiber.Ctx) bool { return Role(c) == "admin" }
func IsTutor(c *fiber.Ctx) bool { return Role(c) == "tutor" || IsAdmin(c) }
