package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"assetcare-backend/internal/adapter/middleware"
	"assetcare-backend/internal/usecase/maintenance"
)

type MaintenanceHandler struct{ uc *maintenance.Usecase }

func NewMaintenanceHandler(uc *maintenance.Usecase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

type createMaintenanceReq struct {
	AssetID           uint64 `json:"asset_id" validate:"required"`
	PerformerPersonID uint64 `json:"performer_person_id"`
	ChiefPersonID     uint64 `json:"chief_person_id" validate:"required"`
	Description       string `json:"description"`
	AttachmentURL     string `json:"attachment_url"`
}

func (h *MaintenanceHandler) Create(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req createMaintenanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	m, err := h.uc.CreateMaintenance(c.Request().Context(), actor, maintenance.CreateMaintenanceInput{
		AssetID:           req.AssetID,
		PerformerPersonID: req.PerformerPersonID,
		ChiefPersonID:     req.ChiefPersonID,
		Description:       req.Description,
		AttachmentURL:     req.AttachmentURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MaintenanceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	m, err := h.uc.GetMaintenance(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MaintenanceHandler) List(c echo.Context) error {
	var assetID uint64
	if raw := c.QueryParam("asset_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid asset_id query param")
		}
		assetID = v
	}
	list, err := h.uc.ListMaintenances(c.Request().Context(), assetID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *MaintenanceHandler) Update(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req maintenance.UpdateMaintenanceInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	m, err := h.uc.UpdateMaintenance(c.Request().Context(), actor, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

type createStepReq struct {
	TypicalStepID *uint64 `json:"typical_step_id"`
	PersonID      uint64  `json:"person_id"`
	Ordinal       int     `json:"ordinal"`
	Status        string  `json:"status"`
}

func (h *MaintenanceHandler) CreateStep(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	maintID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createStepReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	s, err := h.uc.CreateStep(c.Request().Context(), actor, maintID, maintenance.CreateStepInput{
		TypicalStepID: req.TypicalStepID,
		PersonID:      req.PersonID,
		Ordinal:       req.Ordinal,
		Status:        req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *MaintenanceHandler) ListSteps(c echo.Context) error {
	maintID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	list, err := h.uc.ListSteps(c.Request().Context(), maintID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *MaintenanceHandler) GetStep(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s, err := h.uc.GetStep(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *MaintenanceHandler) UpdateStep(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req maintenance.UpdateStepInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	s, err := h.uc.UpdateStep(c.Request().Context(), actor, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *MaintenanceHandler) ListTypicalSteps(c echo.Context) error {
	list, err := h.uc.ListTypicalSteps(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type queueChangesReq struct {
	Changes []maintenance.AttributeChangeInput `json:"changes" validate:"required,min=1"`
}

func (h *MaintenanceHandler) QueueAttributeChanges(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	stepID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req queueChangesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	rows, err := h.uc.QueueAttributeChanges(c.Request().Context(), actor, stepID, req.Changes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rows)
}

func (h *MaintenanceHandler) ListAttributeChanges(c echo.Context) error {
	stepID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	list, err := h.uc.ListAttributeChanges(c.Request().Context(), stepID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *MaintenanceHandler) CreateItemRequest(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	stepID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req maintenance.CreateItemRequestInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.CreateItemRequest(c.Request().Context(), actor, stepID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *MaintenanceHandler) ListItemRequests(c echo.Context) error {
	stepID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	list, err := h.uc.ListItemRequests(c.Request().Context(), stepID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *MaintenanceHandler) GetItemRequest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetItemRequest(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MaintenanceHandler) FulfillItemRequest(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req maintenance.FulfillItemRequestInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.FulfillItemRequest(c.Request().Context(), actor, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type rejectItemRequestReq struct {
	Note string `json:"note"`
}

func (h *MaintenanceHandler) RejectItemRequest(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req rejectItemRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.RejectItemRequest(c.Request().Context(), actor, id, req.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
