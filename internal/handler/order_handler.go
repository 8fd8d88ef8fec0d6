package handler

import (
	"bytes"
	"errors"

	"greenfood-api/internal/invoice"
	"greenfood-api/internal/middleware"
	"greenfood-api/internal/model"
	"greenfood-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type OrderHandler struct {
	orderService service.OrderService
	log          zerolog.Logger
}

func NewOrderHandler(orderService service.OrderService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, log: log}
}

// CreateOrder handles checkout, anonymous or authenticated
// POST /orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	buyer := middleware.CurrentUser(c)

	result, err := h.orderService.CreateOrder(c.Context(), &order, buyer)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientBalance) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if isValidationError(err) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"id":     result.ID.Hex(),
		"status": result.Status,
	})
}

// GetOrder fetches one order
// GET /orders/:id
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.orderService.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(order)
}

// GetInvoice renders the HTML invoice for an order
// GET /orders/:id/invoice
func (h *OrderHandler) GetInvoice(c *fiber.Ctx) error {
	order, err := h.orderService.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(c, h.log, err)
	}

	var buf bytes.Buffer
	if err := invoice.Render(&buf, order); err != nil {
		return internalError(c, h.log, err)
	}

	c.Type("html")
	return c.Send(buf.Bytes())
}
