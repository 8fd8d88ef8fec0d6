package handler

import (
	"errors"
	"strconv"

	"greenfood-api/internal/middleware"
	"greenfood-api/internal/model"
	"greenfood-api/internal/service"
	"greenfood-api/pkg/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type WalletHandler struct {
	walletService service.WalletService
	uploads       *upload.Store
	log           zerolog.Logger
}

func NewWalletHandler(walletService service.WalletService, uploads *upload.Store, log zerolog.Logger) *WalletHandler {
	return &WalletHandler{walletService: walletService, uploads: uploads, log: log}
}

// RequestTopup submits a wallet top-up claim with a proof image
// POST /wallet/topup-request
func (h *WalletHandler) RequestTopup(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
	}

	amount, err := strconv.ParseInt(c.FormValue("amount"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid amount"})
	}

	file, err := c.FormFile("proof")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Proof image is required"})
	}

	proof, err := h.uploads.Save(c, file)
	if err != nil {
		return internalError(c, h.log, err)
	}

	topup, err := h.walletService.RequestTopup(c.Context(), user, amount, proof)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) || errors.Is(err, service.ErrAmountTooSmall) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"id":     topup.ID.Hex(),
		"status": topup.Status,
	})
}

// ListTopups lists top-up requests for review, newest first (admin only)
// GET /admin/topup-requests?status=
func (h *WalletHandler) ListTopups(c *fiber.Ctx) error {
	status := model.TopupStatus(c.Query("status"))

	topups, err := h.walletService.ListTopups(c.Context(), status)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(topups)
}

// ApproveTopup credits the wallet and marks the request approved (admin only)
// POST /admin/topup-requests/:id/approve
func (h *WalletHandler) ApproveTopup(c *fiber.Ctx) error {
	resolution, err := h.walletService.ApproveTopup(c.Context(), c.Params("id"))
	if err != nil {
		return h.resolutionError(c, err)
	}
	return c.JSON(resolution)
}

// RejectTopup marks the request rejected (admin only)
// POST /admin/topup-requests/:id/reject
func (h *WalletHandler) RejectTopup(c *fiber.Ctx) error {
	resolution, err := h.walletService.RejectTopup(c.Context(), c.Params("id"))
	if err != nil {
		return h.resolutionError(c, err)
	}
	return c.JSON(resolution)
}

// GetWallet returns the live stored balance
// GET /wallet
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
	}

	balance, err := h.walletService.Balance(c.Context(), user.ID)
	if err != nil {
		return internalError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"balance": balance})
}

func (h *WalletHandler) resolutionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrTopupNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, service.ErrTopupResolved) {
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	}
	return internalError(c, h.log, err)
}
