package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SystemHandler serves the health and diagnostics endpoints.
type SystemHandler struct {
	appName string
	db      *mongo.Database
}

func NewSystemHandler(appName string, db *mongo.Database) *SystemHandler {
	return &SystemHandler{appName: appName, db: db}
}

// Root reports a health message
// GET /
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": h.appName + " is running"})
}

// Schema lists the entity collections the API persists
// GET /schema
func (h *SystemHandler) Schema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"collections": []string{
			"users",
			"categories",
			"products",
			"orders",
			"topup_requests",
			"settings",
		},
	})
}

// Test reports store connectivity diagnostics. Informational only; the
// response never fails the request even when the store is unreachable.
// GET /test
func (h *SystemHandler) Test(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_name":     h.db.Name(),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if err := h.db.Client().Ping(c.Context(), nil); err != nil {
		response["database"] = "error: " + err.Error()
		return c.JSON(response)
	}
	response["database"] = "connected"
	response["connection_status"] = "connected"

	names, err := h.db.ListCollectionNames(c.Context(), bson.M{})
	if err == nil {
		if len(names) > 10 {
			names = names[:10]
		}
		response["collections"] = names
	}

	return c.JSON(response)
}
