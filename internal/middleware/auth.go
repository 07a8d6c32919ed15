package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-accounts/internal/auth"
)

func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get(echo.HeaderAuthorization)
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 || !strings.EqualFold(hdrSplit[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithClaims(req.Context(), claims)))
			return next(c)
		}
	}
}
