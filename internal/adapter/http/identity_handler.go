package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"assetcare-backend/internal/adapter/middleware"
	"assetcare-backend/internal/usecase/identity"
)

type IdentityHandler struct{ uc *identity.Usecase }

func NewIdentityHandler(uc *identity.Usecase) *IdentityHandler {
	return &IdentityHandler{uc: uc}
}

func (h *IdentityHandler) Login(c echo.Context) error {
	var req identity.LoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IdentityHandler) Me(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	out, err := h.uc.Me(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IdentityHandler) CreatePerson(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req identity.CreatePersonInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	p, err := h.uc.CreatePerson(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *IdentityHandler) GetPerson(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.GetPerson(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *IdentityHandler) ListPersons(c echo.Context) error {
	list, err := h.uc.ListPersons(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *IdentityHandler) UpdatePerson(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req identity.UpdatePersonInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	p, err := h.uc.UpdatePerson(c.Request().Context(), actor, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *IdentityHandler) CreateUser(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req identity.CreateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	u, err := h.uc.CreateUser(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *IdentityHandler) ListRoles(c echo.Context) error {
	list, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type roleGrantReq struct {
	RoleCode string `json:"role_code" validate:"required"`
}

func (h *IdentityHandler) AssignRole(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	personID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req roleGrantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.AssignRole(c.Request().Context(), actor, personID, req.RoleCode); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *IdentityHandler) RemoveRole(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	personID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	roleCode := c.Param("code")
	if roleCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing code path param")
	}
	if err := h.uc.RemoveRole(c.Request().Context(), actor, personID, roleCode); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
