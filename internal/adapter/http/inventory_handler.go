package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"assetcare-backend/internal/adapter/middleware"
	"assetcare-backend/internal/usecase/inventory"
)

type InventoryHandler struct{ uc *inventory.Usecase }

func NewInventoryHandler(uc *inventory.Usecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func (h *InventoryHandler) CreateAsset(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req inventory.CreateAssetInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	a, err := h.uc.CreateAsset(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *InventoryHandler) GetAsset(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	a, err := h.uc.GetAsset(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *InventoryHandler) ListAssets(c echo.Context) error {
	list, err := h.uc.ListAssets(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *InventoryHandler) CreateStockItem(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req inventory.CreateStockItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	s, err := h.uc.CreateStockItem(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *InventoryHandler) ListStockItems(c echo.Context) error {
	list, err := h.uc.ListStockItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *InventoryHandler) CreateConsumable(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req inventory.CreateConsumableInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.CreateConsumable(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *InventoryHandler) ListConsumables(c echo.Context) error {
	list, err := h.uc.ListConsumables(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *InventoryHandler) Assign(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req inventory.AssignInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	a, err := h.uc.Assign(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *InventoryHandler) Return(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	a, err := h.uc.Return(c.Request().Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *InventoryHandler) ListAssignments(c echo.Context) error {
	personID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	activeOnly := c.QueryParam("active") == "true"
	list, err := h.uc.ListAssignments(c.Request().Context(), personID, activeOnly)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *InventoryHandler) Move(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req inventory.MoveInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	mv, err := h.uc.Move(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, mv)
}

func (h *InventoryHandler) ListMovements(c echo.Context) error {
	targetType := c.QueryParam("target_type")
	targetID, err := strconv.ParseUint(c.QueryParam("target_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid target_id query param")
	}
	list, err := h.uc.ListMovements(c.Request().Context(), targetType, targetID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *InventoryHandler) ReportProblem(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req inventory.ReportProblemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	p, err := h.uc.ReportProblem(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *InventoryHandler) ResolveProblem(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.ResolveProblem(c.Request().Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *InventoryHandler) ListProblemReports(c echo.Context) error {
	unresolvedOnly := c.QueryParam("unresolved") == "true"
	list, err := h.uc.ListProblemReports(c.Request().Context(), unresolvedOnly)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *InventoryHandler) ListAttributeValues(c echo.Context) error {
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	values, err := h.uc.ListAttributeValues(c.Request().Context(), c.Param("target"), targetID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, values)
}

type recordConditionReq struct {
	TargetType string `json:"target_type" validate:"required,targettype"`
	TargetID   uint64 `json:"target_id" validate:"required"`
	Condition  string `json:"condition" validate:"required"`
}

func (h *InventoryHandler) RecordCondition(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req recordConditionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	hist, err := h.uc.RecordCondition(c.Request().Context(), actor, req.TargetType, req.TargetID, req.Condition)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, hist)
}

func (h *InventoryHandler) ListConditionHistory(c echo.Context) error {
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	list, err := h.uc.ListConditionHistory(c.Request().Context(), c.Param("target"), targetID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
