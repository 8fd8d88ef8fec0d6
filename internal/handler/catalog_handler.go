package handler

import (
	"strconv"

	"greenfood-api/internal/model"
	"greenfood-api/internal/service"
	"greenfood-api/pkg/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	uploads        *upload.Store
	log            zerolog.Logger
}

func NewCatalogHandler(catalogService service.CatalogService, uploads *upload.Store, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, uploads: uploads, log: log}
}

// GetCategories lists all categories
// GET /categories
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(categories)
}

// CreateCategory inserts a category (admin only)
// POST /categories
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.catalogService.CreateCategory(c.Context(), &category)
	if err != nil {
		if isValidationError(err) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"id": id.Hex()})
}

// GetProducts lists products with optional filters
// GET /products?category=&q=
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	filter := model.ProductFilter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}

	products, err := h.catalogService.ListProducts(c.Context(), filter)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(products)
}

// CreateProductRequest carries the multipart form fields for a product.
type CreateProductRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Price       int64  `json:"price" form:"price"`
	Category    string `json:"category" form:"category"`
	InStock     bool   `json:"in_stock" form:"in_stock"`
	Rating      string `json:"rating" form:"rating"`
}

// CreateProduct inserts a product with an optional image upload (admin only)
// POST /products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rating := 4.5
	if req.Rating != "" {
		parsed, err := strconv.ParseFloat(req.Rating, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid rating"})
		}
		rating = parsed
	}

	product := model.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		InStock:     req.InStock,
		Rating:      rating,
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		url, err := h.uploads.Save(c, file)
		if err != nil {
			return internalError(c, h.log, err)
		}
		product.Image = url
	}

	id, err := h.catalogService.CreateProduct(c.Context(), &product)
	if err != nil {
		if isValidationError(err) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"id": id.Hex(), "image": product.Image})
}
