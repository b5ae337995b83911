// handlers/notifications.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// MarkNotificationsRead is not backed by a notification entity yet. It
// reports that honestly instead of returning a success that mutated
// nothing.
func MarkNotificationsRead(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
		"success": false,
		"error":   "Notifications are not implemented",
	})
}
