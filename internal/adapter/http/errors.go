package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"assetcare-backend/internal/auth"
	"assetcare-backend/internal/domain/catalog"
	"assetcare-backend/internal/domain/identity"
	"assetcare-backend/internal/domain/inventory"
	"assetcare-backend/internal/domain/maintenance"
	"assetcare-backend/internal/domain/paperwork"
)

// writeError maps domain sentinels onto HTTP status codes. Anything it does
// not recognize is a 500 and gets logged with the route.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, identity.ErrNotFound),
		errors.Is(err, inventory.ErrNotFound),
		errors.Is(err, maintenance.ErrNotFound),
		errors.Is(err, paperwork.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.Is(err, identity.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "permission denied"})

	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})

	case errors.Is(err, maintenance.ErrStepDone),
		errors.Is(err, maintenance.ErrRequestClosed),
		errors.Is(err, identity.ErrUsernameTaken),
		errors.Is(err, inventory.ErrAlreadyAssigned),
		errors.Is(err, inventory.ErrAlreadyReturned),
		errors.Is(err, inventory.ErrAlreadyResolved):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, maintenance.ErrInvalidStatus),
		errors.Is(err, maintenance.ErrInvalidTarget),
		errors.Is(err, maintenance.ErrKindMismatch),
		errors.Is(err, maintenance.ErrItemMismatch),
		errors.Is(err, catalog.ErrAmbiguousValue),
		errors.Is(err, catalog.ErrInvalidTarget),
		errors.Is(err, catalog.ErrUnknownKind),
		errors.Is(err, inventory.ErrUnknownTargetType):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
