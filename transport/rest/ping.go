package rest

import "github.com/gofiber/fiber/v2"

func (that *Server) handlePing(c *fiber.Ctx) error {
	return c.SendString("pong")
}
