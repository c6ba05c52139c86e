package routes

import (
	"errors"
	"net/http"

	"ontox/internal/server/middleware"
	"ontox/pkg/ontology"

	"github.com/labstack/echo/v4"
)

// SearchHandler returns autocomplete suggestions: labels containing the
// query, case-insensitively, in record load order. A missing limit
// defaults to ontology.DefaultSuggestLimit; a non-positive one is
// rejected.
func SearchHandler(c echo.Context) error {
	type searchParams struct {
		Query string `query:"query"`
		Limit *int   `query:"limit"`
	}

	var params searchParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	limit := ontology.DefaultSuggestLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	onto := c.(*middleware.AppContext).App.Holder.Snapshot()

	suggestions, err := onto.Suggest(params.Query, limit)
	if err != nil {
		if errors.Is(err, ontology.ErrInvalidLimit) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Limit must be positive"})
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string][]string{"suggestions": suggestions})
}
