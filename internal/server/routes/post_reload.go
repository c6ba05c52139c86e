package routes

import (
	"net/http"

	"ontox/internal/queue"
	"ontox/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// ReloadHandler triggers a full rebuild of the ontology snapshot. With a
// queue channel configured the trigger is published to the reload queue
// and picked up asynchronously; without one the rebuild runs inline.
func ReloadHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	if app.Queue != nil {
		if err := queue.Publish(app.Queue, queue.ReloadQueue, []byte("reload")); err != nil {
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusAccepted, map[string]string{"status": "queued"})
	}

	onto, err := app.Holder.Reload(c.Request().Context())
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int{"entities": onto.Len()})
}
