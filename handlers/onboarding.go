// handlers/onboarding.go
package handlers

import (
	"volo/database"
	"volo/middleware"
	"volo/services"

	"github.com/gofiber/fiber/v2"
)

// GetOnboardingStatus tells the client where to send the user next.
func GetOnboardingStatus(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	completed := services.HasCompletedOnboarding(database.GetDB(), userID)

	return c.JSON(fiber.Map{
		"success":   true,
		"completed": completed,
		"redirect":  services.OnboardingRedirect(completed),
	})
}
