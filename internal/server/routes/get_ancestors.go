package routes

import (
	"errors"
	"net/http"

	"ontox/internal/server/middleware"
	"ontox/pkg/ontology"

	"github.com/labstack/echo/v4"
)

// GetAncestorsHandler resolves a query (entity id or label) and returns
// every transitive ancestor mapped to its minimal depth.
func GetAncestorsHandler(c echo.Context) error {
	type getAncestorsParams struct {
		Query string `query:"query" validate:"required"`
	}

	var params getAncestorsParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing query parameter"})
	}

	onto := c.(*middleware.AppContext).App.Holder.Snapshot()

	id, err := onto.Resolve(params.Query)
	if err != nil {
		if errors.Is(err, ontology.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Entity not found"})
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, onto.AncestorsWithDepth(id))
}
