// Package log emits structured, request-scoped log lines. Handlers pass the
// fiber context so every entry carries the request id, method, path and status.
package log

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var base = zerolog.New(os.Stdout).With().Timestamp().Logger()

// SetOutput redirects log output, e.g. to a MultiWriter with a file sink.
func SetOutput(w io.Writer) {
	base = zerolog.New(w).With().Timestamp().Logger()
}

func emit(ev *zerolog.Event, c *fiber.Ctx, action string, fields map[string]any) {
	ev = ev.Str("action", action)
	if c != nil {
		ev = ev.Str("ip", c.IP()).Str("method", c.Method()).Str("path", c.Path())
		if code := c.Response().StatusCode(); code != 0 {
			ev = ev.Int("status", code)
		}
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ev = ev.Str("req_id", rid)
		}
	}
	if len(fields) > 0 {
		ev = ev.Fields(fields)
	}
	ev.Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	emit(base.Info(), c, action, fields)
}

// Audit records a successful state change (create/update/delete).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	emit(base.Info().Bool("audit", true), c, action, fields)
}

// Security records rejected or suspicious input.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	emit(base.Warn(), c, action, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	emit(base.Error().Err(err), c, action, fields)
}
