package httputil

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo"
)

func Encode[T any](c echo.Context, status int, v T) error {
	return c.JSON(status, v)
}

func Decode[T any](c echo.Context) (T, error) {
	var v T
	if err := c.Bind(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// Error writes the error envelope the API façade understands: a top-level
// "error" field.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// BadRequest flattens request-validation problems into the error envelope.
func BadRequest(c echo.Context, problems map[string][]string) error {
	for property, details := range problems {
		if len(details) > 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error":    details[0],
				"property": property,
			})
		}
	}
	return Error(c, http.StatusBadRequest, "invalid request")
}
