package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header that carries the request's RayID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a unique RayID.
// The ID is stored in the request locals and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
