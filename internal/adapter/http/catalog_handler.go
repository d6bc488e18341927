package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"assetcare-backend/internal/adapter/middleware"
	domain "assetcare-backend/internal/domain/catalog"
	"assetcare-backend/internal/usecase/catalog"
)

// CatalogHandler serves the reference-data CRUD. Bodies bind straight onto
// the domain models; the rows have no behavior worth a DTO layer.
type CatalogHandler struct{ uc *catalog.Usecase }

func NewCatalogHandler(uc *catalog.Usecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	var b domain.Brand
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.CreateBrand(c.Request().Context(), actor, &b); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *CatalogHandler) ListBrands(c echo.Context) error {
	list, err := h.uc.ListBrands(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) GetBrand(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	b, err := h.uc.GetBrand(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteBrand(c.Request().Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) CreateAssetType(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	var t domain.AssetType
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.CreateAssetType(c.Request().Context(), actor, &t); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *CatalogHandler) ListAssetTypes(c echo.Context) error {
	list, err := h.uc.ListAssetTypes(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) CreateAssetModel(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	var m domain.AssetModel
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.CreateAssetModel(c.Request().Context(), actor, &m); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *CatalogHandler) ListAssetModels(c echo.Context) error {
	list, err := h.uc.ListAssetModels(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) CreateStockItemModel(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	var m domain.StockItemModel
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.CreateStockItemModel(c.Request().Context(), actor, &m); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *CatalogHandler) ListStockItemModels(c echo.Context) error {
	list, err := h.uc.ListStockItemModels(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) CreateConsumableModel(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	var m domain.ConsumableModel
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.CreateConsumableModel(c.Request().Context(), actor, &m); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *CatalogHandler) ListConsumableModels(c echo.Context) error {
	list, err := h.uc.ListConsumableModels(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) CreateRoom(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	var r domain.Room
	if err := c.Bind(&r); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.CreateRoom(c.Request().Context(), actor, &r); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *CatalogHandler) ListRooms(c echo.Context) error {
	list, err := h.uc.ListRooms(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) CreateAttributeDefinition(c echo.Context) error {
	actor, _ := middleware.ActorFromContext(c)
	var d domain.AttributeDefinition
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.CreateAttributeDefinition(c.Request().Context(), actor, &d); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *CatalogHandler) ListAttributeDefinitions(c echo.Context) error {
	target := domain.TargetType(c.QueryParam("target_type"))
	list, err := h.uc.ListAttributeDefinitions(c.Request().Context(), target)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
