package auth

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

// AdminKeyHeader carries the plaintext admin key.
const AdminKeyHeader = "X-Admin-Key"

// HashAdminKey hashes a plaintext admin key for ADMIN_KEY_HASH.
func HashAdminKey(key string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// RequireAdminKey rejects requests whose admin key does not match hash. An empty
// hash disables admin routes entirely.
func RequireAdminKey(hash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hash == "" {
			return apperrors.NewForbidden("admin routes disabled")
		}
		key := c.Get(AdminKeyHeader)
		if key == "" {
			return apperrors.NewUnauthorized("missing admin key")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
			return apperrors.NewUnauthorized("invalid admin key")
		}
		return c.Next()
	}
}
