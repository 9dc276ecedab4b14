package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "catalogd/internal/log"
	"catalogd/internal/validate"
)

// UploadHandler stores product images under the media directory and returns
// the reference string used as a product's image field.
type UploadHandler struct {
	MediaDir string
}

func (h *UploadHandler) Store(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return unprocessable(c, validate.Errors{"file": {"is required"}})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		applog.Security(c, "media.upload.reject", map[string]any{"filename": fh.Filename})
		return unprocessable(c, validate.Errors{"file": {"must be a jpg, png, gif or webp image"}})
	}

	name := "uploads/" + uuid.NewString() + ext
	dst := filepath.Join(h.MediaDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := c.SaveFile(fh, dst); err != nil {
		return err
	}

	applog.Audit(c, "media.upload", map[string]any{"image": name, "bytes": fh.Size})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"image": name})
}
