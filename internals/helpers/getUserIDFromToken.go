package helper

import (
	"strings"

	"github.com/google/uuid"

	"healthcard_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
)

const LocUserID = "user_id"

// GetUserIDFromToken mengambil user_id yang sudah di-hydrate middleware JWT.
// Tanpa identitas → apperr Unauthorized.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, apperr.Unauthorized("User belum login")
	}

	var raw string
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, apperr.Unauthorized("User belum login")
		}
		return t, nil
	case string:
		raw = t
	case []byte:
		raw = string(t)
	default:
		return uuid.Nil, apperr.Unauthorized("User ID pada token tidak valid")
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, apperr.Unauthorized("User belum login")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apperr.Unauthorized("User ID pada token tidak valid")
	}
	return id, nil
}
