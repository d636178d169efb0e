package handlers

import "github.com/labstack/echo/v4"

// getUserIDFromContext returns the acting user set by the session
// middleware, or zero when the request is anonymous.
func getUserIDFromContext(c echo.Context) uint {
	if userID, ok := c.Get("userID").(uint); ok {
		return userID
	}
	return 0
}
