package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// themeToggle flips the persisted dark/light preference and returns to the
// page the toggle was pressed on.
func (s *server) themeToggle(ctx echo.Context) error {
	if _, err := s.opts.Prefs.Toggle(); err != nil {
		s.opts.Logger.Error("persisting theme preference failed", zap.Error(err))
	}
	back := ctx.Request().Referer()
	if back == "" {
		back = "/"
	}
	return ctx.Redirect(http.StatusSeeOther, back)
}
