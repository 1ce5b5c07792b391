package handler

import "github.com/gofiber/fiber/v3"

// Success payloads travel under "data", failures under "error".

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

func noContent(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func failure(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func badRequest(c fiber.Ctx, msg string) error {
	return failure(c, fiber.StatusBadRequest, msg)
}

func unauthorized(c fiber.Ctx) error {
	return failure(c, fiber.StatusUnauthorized, "unauthorized")
}

func forbidden(c fiber.Ctx) error {
	return failure(c, fiber.StatusForbidden, "forbidden")
}

func notFound(c fiber.Ctx, msg string) error {
	return failure(c, fiber.StatusNotFound, msg)
}

func conflict(c fiber.Ctx, msg string) error {
	return failure(c, fiber.StatusConflict, msg)
}

func tooManyRequests(c fiber.Ctx, msg string) error {
	return failure(c, fiber.StatusTooManyRequests, msg)
}

func internalError(c fiber.Ctx) error {
	return failure(c, fiber.StatusInternalServerError, "internal server error")
}
