package routes

import (
	"net/http"

	"ontox/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// GetLabelsHandler returns every loaded entity label in record order.
// Front ends use it to seed their autocomplete lists.
func GetLabelsHandler(c echo.Context) error {
	onto := c.(*middleware.AppContext).App.Holder.Snapshot()
	return c.JSON(http.StatusOK, map[string][]string{"labels": onto.Labels()})
}
