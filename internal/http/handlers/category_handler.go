package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "catalogd/internal/log"
	"catalogd/internal/services"
	"catalogd/internal/validate"
)

const categoryNotFound = "Category not found"

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(cats)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	in, errs := validate.Category(c.Body())
	if errs != nil {
		return unprocessable(c, errs)
	}
	cat, err := h.Catalog.CreateCategory(*in.Name)
	if err != nil {
		return err
	}
	applog.Audit(c, "category.create", map[string]any{"id": cat.ID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, categoryNotFound)
	}
	cat, err := h.Catalog.GetCategory(id)
	if err != nil {
		return fail(c, err, categoryNotFound)
	}
	return c.JSON(cat)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, categoryNotFound)
	}
	// Existence is checked before validation so an unknown id is reported as
	// not-found even when the payload is also bad.
	if _, err := h.Catalog.GetCategory(id); err != nil {
		return fail(c, err, categoryNotFound)
	}
	in, errs := validate.Category(c.Body())
	if errs != nil {
		return unprocessable(c, errs)
	}
	cat, err := h.Catalog.UpdateCategory(id, *in.Name)
	if err != nil {
		return fail(c, err, categoryNotFound)
	}
	applog.Audit(c, "category.update", map[string]any{"id": cat.ID})
	return c.JSON(cat)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, categoryNotFound)
	}
	if err := h.Catalog.DeleteCategory(id); err != nil {
		return fail(c, err, categoryNotFound)
	}
	applog.Audit(c, "category.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
