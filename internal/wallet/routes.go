package wallet

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app fiber.Router, service *Service) {

	app.Post("/wallet/register", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil || len(r.Username) < 3 || len(r.Username) > 20 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "username must be 3-20 characters"})
		}
		account, err := service.Create(r.Username, RolePlayer)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "username already taken"})
		}
		return c.JSON(fiber.Map{"success": true, "data": account})
	})

	app.Get("/wallet/balance/:id", func(c *fiber.Ctx) error {
		account, err := service.Get(c.Params("id"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "account not found"})
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"balance": account.Balance}})
	})
}
