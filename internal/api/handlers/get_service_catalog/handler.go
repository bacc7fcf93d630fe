package get_service_catalog

import (
	"errors"
	"net/http"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/service/catalog"
)

const (
	msgInvalidCategoryID = "category ID must not be empty"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCategories GET /api/v1/service-categories
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListServiceCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /service-categories - Failed to list categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /service-categories - Categories listed successfully: count=%d", len(categories))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCategories(categories))
}

// HandleServices GET /api/v1/services?categoryId=...
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	var categoryID *string
	if v, ok := r.URL.Query()["categoryId"]; ok && len(v) > 0 {
		categoryID = &v[0]
	}

	services, err := h.service.ListServices(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /services - Invalid category ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)

		default:
			h.logger.Error("GET /services - Failed to list services: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services - Services listed successfully: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
