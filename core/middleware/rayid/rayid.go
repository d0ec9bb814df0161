package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header the ray id is echoed in.
const HeaderName = "X-Ray-Id"

// LocalsKey is the fiber locals key carrying the ray id.
const LocalsKey = "ray_id"

// New creates a middleware that assigns every request a unique ray id,
// stored in locals and echoed in the response headers for correlation.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
