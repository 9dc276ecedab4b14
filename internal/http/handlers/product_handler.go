package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "catalogd/internal/log"
	"catalogd/internal/repos"
	"catalogd/internal/services"
	"catalogd/internal/validate"
)

const productNotFound = "Product not found"

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	var f repos.ProductFilter
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		id, ok := validate.ID(raw)
		if !ok {
			applog.Security(c, "filter.bad", map[string]any{"category_id": raw})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "category_id must be a positive integer"})
		}
		f.CategoryID = &id
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, ok := validate.Status(raw)
		if !ok {
			applog.Security(c, "filter.bad", map[string]any{"status": raw})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "status must be one of available, pending, sold"})
		}
		f.Status = st
	}

	prods, err := h.Catalog.ListProducts(f)
	if err != nil {
		return err
	}
	return c.JSON(prods)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, errs := validate.ProductForCreate(c.Body())
	if errs != nil {
		return unprocessable(c, errs)
	}
	id, err := h.Catalog.CreateProduct(in)
	if err != nil {
		return err
	}
	applog.Audit(c, "product.create", map[string]any{"id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
		"message": "Product added successfully",
	})
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, productNotFound)
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return fail(c, err, productNotFound)
	}
	return c.JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, productNotFound)
	}
	if _, err := h.Catalog.GetProduct(id); err != nil {
		return fail(c, err, productNotFound)
	}
	in, errs := validate.ProductForUpdate(c.Body())
	if errs != nil {
		return unprocessable(c, errs)
	}
	p, err := h.Catalog.UpdateProduct(id, in)
	if err != nil {
		return fail(c, err, productNotFound)
	}
	applog.Audit(c, "product.update", map[string]any{"id": p.ID})
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, productNotFound)
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return fail(c, err, productNotFound)
	}
	applog.Audit(c, "product.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
