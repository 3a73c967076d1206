package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"casino-platform/internal/wallet"
)

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Get("/users", func(c *fiber.Ctx) error {
		users, err := service.ListUsers(c.QueryInt("limit", 100), c.QueryInt("offset", 0))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
			"users": users,
			"total": len(users),
		}})
	})

	r.Get("/users/:id", func(c *fiber.Ctx) error {
		account, bets, transactions, err := service.UserDetail(c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
			"user":         account,
			"bets":         bets,
			"transactions": transactions,
		}})
	})

	r.Post("/adjust-balance", func(c *fiber.Ctx) error {
		type Req struct {
			UserID      string  `json:"user_id"`
			Amount      float64 `json:"amount"`
			Description string  `json:"description"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil || body.UserID == "" {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}

		adminID := c.Get("X-Admin-ID", "admin")

		adjustment, err := service.AdjustBalance(c.Context(), adminID, body.UserID, body.Amount, body.Description)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "message": "Balance adjusted successfully", "data": adjustment})
	})

	r.Get("/transactions", func(c *fiber.Ctx) error {
		transactions, err := service.ListTransactions(c.QueryInt("limit", 100), c.QueryInt("offset", 0))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
			"transactions": transactions,
			"total":        len(transactions),
		}})
	})

	r.Get("/dashboard", func(c *fiber.Ctx) error {
		dashboard, err := service.Dashboard()
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": dashboard})
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wallet.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, wallet.ErrBalanceBelowZero),
		errors.Is(err, wallet.ErrBalanceAboveMax):
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Internal server error"})
	}
}
