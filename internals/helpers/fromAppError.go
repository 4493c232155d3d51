package helper

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"healthcard_backend/internals/helpers/apperr"
)

// FromAppError mengubah error service (apperr, *fiber.Error, validator)
// menjadi response JSON yang konsisten.
func FromAppError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ValidationErrors(c, ve)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		log.Printf("[ERROR] unhandled error %s %s: %v", c.Method(), c.OriginalURL(), err)
		return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	switch ae.Kind {
	case apperr.KindUnauthorized:
		return JsonError(c, fiber.StatusUnauthorized, ae.Message)
	case apperr.KindValidation:
		fields := map[string][]string{}
		if ae.Field != "" {
			fields[ae.Field] = []string{ae.Message}
		}
		return JsonValidationError(c, fiber.StatusBadRequest, ae.Error(), fields)
	case apperr.KindNotFound:
		return JsonError(c, fiber.StatusNotFound, ae.Message)
	case apperr.KindConflict:
		return JsonError(c, fiber.StatusConflict, ae.Message)
	case apperr.KindPersistence:
		log.Printf("[ERROR] persistence %s %s: %v", c.Method(), c.OriginalURL(), ae)
		return JsonError(c, fiber.StatusInternalServerError, ae.Message)
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), ae)
		return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// ValidationErrors khusus error validator.v10 → 400 dengan map field → tag.
func ValidationErrors(c *fiber.Ctx, ve validator.ValidationErrors) error {
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
	}
	return JsonValidationError(c, fiber.StatusBadRequest, "Validasi gagal", fields)
}
