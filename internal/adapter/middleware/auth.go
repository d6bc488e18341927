package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"assetcare-backend/internal/auth"
	"assetcare-backend/internal/domain/identity"
)

const actorContextKey = "actor"

// Auth validates the bearer token and resolves the caller's roles into an
// identity.Actor stored on the echo context. Role lookup happens per request
// so a revoked role takes effect without waiting for token expiry.
func Auth(svc *auth.Service, repo identity.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := auth.ExtractTokenFromHeader(c.Request().Header.Get("Authorization"))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			claims, err := svc.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			roles, err := repo.RoleCodesForPerson(c.Request().Context(), claims.PersonID)
			if err != nil {
				logrus.WithError(err).WithField("person_id", claims.PersonID).Error("role lookup failed")
				return echo.NewHTTPError(http.StatusInternalServerError, "could not resolve roles")
			}

			c.Set(actorContextKey, identity.Actor{
				PersonID:  claims.PersonID,
				Username:  claims.Username,
				Superuser: claims.Superuser,
				Roles:     roles,
			})
			return next(c)
		}
	}
}

// ActorFromContext returns the authenticated actor set by Auth.
func ActorFromContext(c echo.Context) (identity.Actor, bool) {
	a, ok := c.Get(actorContextKey).(identity.Actor)
	return a, ok
}

// RequireCapability gates a route group on a resolved capability. Fine-grained
// checks (ownership etc.) still live in the usecases.
func RequireCapability(cap identity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, ok := ActorFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if !identity.Resolve(a).Has(cap) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}
