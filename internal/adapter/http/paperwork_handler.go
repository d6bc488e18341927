package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"assetcare-backend/internal/adapter/middleware"
	"assetcare-backend/internal/usecase/paperwork"
)

type PaperworkHandler struct{ uc *paperwork.Usecase }

func NewPaperworkHandler(uc *paperwork.Usecase) *PaperworkHandler {
	return &PaperworkHandler{uc: uc}
}

func (h *PaperworkHandler) CreateAttributionOrder(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req paperwork.CreateAttributionOrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	o, err := h.uc.CreateAttributionOrder(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *PaperworkHandler) GetAttributionOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.uc.GetAttributionOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *PaperworkHandler) ListAttributionOrders(c echo.Context) error {
	list, err := h.uc.ListAttributionOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *PaperworkHandler) CreateReceiptReport(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req paperwork.CreateReceiptReportInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	r, err := h.uc.CreateReceiptReport(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *PaperworkHandler) ListReceiptReports(c echo.Context) error {
	list, err := h.uc.ListReceiptReports(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *PaperworkHandler) CreateCertificate(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req paperwork.CreateCertificateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	crt, err := h.uc.CreateCertificate(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, crt)
}

func (h *PaperworkHandler) ListCertificates(c echo.Context) error {
	list, err := h.uc.ListCertificates(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *PaperworkHandler) CreateCompanyAssetRequest(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)

	var req paperwork.CreateCompanyAssetRequestInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	r, err := h.uc.CreateCompanyAssetRequest(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *PaperworkHandler) ListCompanyAssetRequests(c echo.Context) error {
	list, err := h.uc.ListCompanyAssetRequests(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
