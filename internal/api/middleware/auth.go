package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

const callerContextKey = "caller"

// Auth validates the bearer JWT and injects the caller principal into the
// echo context. The caller's boolean claims gate every admin operation; they
// are read from the token only and never from a store.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			subject, _ := claims["sub"].(string)
			email, _ := claims["email"].(string)
			c.Set(callerContextKey, domain.Caller{
				Subject: subject,
				Email:   email,
				Claims: domain.Claims{
					Admin:  boolClaim(claims, "admin"),
					Editor: boolClaim(claims, "editor"),
					Owner:  boolClaim(claims, "owner"),
				},
			})

			return next(c)
		}
	}
}

// CallerFromContext returns the caller injected by Auth. The second return
// is false when the middleware did not run on this route.
func CallerFromContext(c echo.Context) (domain.Caller, bool) {
	caller, ok := c.Get(callerContextKey).(domain.Caller)
	return caller, ok
}

// boolClaim reads a boolean claim; absent or non-boolean values are false.
func boolClaim(claims jwt.MapClaims, name string) bool {
	b, _ := claims[name].(bool)
	return b
}
