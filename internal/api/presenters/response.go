package presenters

import "github.com/gofiber/fiber/v2"

// SuccessResponse writes the payload bare, keeping the wire contract of the
// frontend (list endpoints return plain arrays, creates return the record).
func SuccessResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// OperationOK is the {"success":true} body used by lifecycle mutations.
func OperationOK(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	return c.Status(status).JSON(body)
}
