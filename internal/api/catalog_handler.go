package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gradepath/gradepath-api/internal/api/shared"
	"github.com/gradepath/gradepath-api/internal/domain"
)

// CatalogProvider is the service surface the catalog handler depends on.
type CatalogProvider interface {
	Catalog(ctx context.Context, countryCode string) (*domain.CountryCatalog, error)
}

// CatalogHandler serves per-country subject catalogs to grade-entry
// forms.
type CatalogHandler struct {
	catalogs CatalogProvider
	logger   *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogs CatalogProvider, baseLogger *slog.Logger) *CatalogHandler {
	if baseLogger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CatalogHandler")
	}

	return &CatalogHandler{
		catalogs: catalogs,
		logger:   baseLogger.With(slog.String("component", "catalog_handler")),
	}
}

// GetSubjects handles GET /countries/{code}/subjects requests.
func (h *CatalogHandler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	if len(code) != 2 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid country code")
		return
	}

	cat, err := h.catalogs.Catalog(r.Context(), code)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CatalogResponse{
		CountryCode:       cat.CountryCode,
		Subjects:          cat.Subjects,
		EitherOrGroups:    cat.EitherOrGroups,
		MandatorySubjects: cat.MandatorySubjects,
	})
}
