package skill

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
)

const Version = "v0.1"

func NewServer(s *Skill) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	webApp.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"version": Version,
		})
	})

	webApp.Post("/skill", skillHandler(s))

	return webApp
}

func skillHandler(s *Skill) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var envelope RequestEnvelope
		if err := json.Unmarshal(c.Body(), &envelope); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid skill request: "+err.Error())
		}

		response, err := s.Handle(c.UserContext(), envelope)
		if errors.Is(err, ErrUnknownIntent) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		} else if err != nil {
			return err
		}

		return c.JSON(response)
	}
}
