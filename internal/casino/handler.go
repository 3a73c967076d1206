package casino

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"casino-platform/internal/games"
	"casino-platform/internal/wallet"
)

func RegisterRoutes(r fiber.Router, service *Service, betGuard fiber.Handler) {

	r.Post("/games/bet", betGuard, func(c *fiber.Ctx) error {

		type Req struct {
			GameType   string          `json:"game_type"`
			Amount     float64         `json:"amount"`
			Prediction json.RawMessage `json:"prediction"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}
		if body.Amount <= 0 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": ErrInvalidAmount.Error()})
		}
		if len(body.Prediction) == 0 {
			body.Prediction = json.RawMessage(`{}`)
		}

		uid := c.Locals("uid").(string)
		actingUID := c.Get("X-User-Token")

		result, err := service.PlaceBet(c.Context(), uid, games.Type(body.GameType),
			body.Amount, body.Prediction, actingUID)
		if err != nil {
			return writeError(c, err)
		}

		message := "Better luck next time!"
		if result.Win {
			message = "Congratulations! You won!"
		}
		return c.JSON(fiber.Map{"success": true, "message": message, "data": result})
	})

	r.Get("/games/history", func(c *fiber.Ctx) error {
		uid := c.Locals("uid").(string)
		limit := c.QueryInt("limit", 50)

		bets, err := service.History(uid, limit)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
			"bets":  bets,
			"total": len(bets),
		}})
	})

	r.Get("/games/stats", func(c *fiber.Ctx) error {
		uid := c.Locals("uid").(string)

		stats, err := service.UserStats(uid)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"stats": stats}})
	})

	r.Get("/games/config", func(c *fiber.Ctx) error {
		out := fiber.Map{}
		for _, t := range games.Types() {
			cfg, _ := games.ConfigFor(t)
			out[string(t)] = fiber.Map{
				"minBet":    cfg.MinBet,
				"maxBet":    cfg.MaxBet,
				"houseEdge": cfg.HouseEdge,
				"maxPayout": cfg.MaxPayout,
			}
		}
		return c.JSON(fiber.Map{"success": true, "data": out})
	})
}

// writeError maps the error taxonomy to a response envelope. Internal
// failures never leak details to the client.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wallet.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, games.ErrUnknownGame),
		errors.Is(err, games.ErrInvalidPrediction),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInsufficientFunds):
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Internal server error"})
	}
}
