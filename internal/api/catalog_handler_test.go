package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/store"
	"github.com/gradepath/gradepath-api/internal/testutils"
)

type stubCatalogProvider struct {
	catalog *domain.CountryCatalog
	err     error

	gotCode string
}

func (s *stubCatalogProvider) Catalog(_ context.Context, code string) (*domain.CountryCatalog, error) {
	s.gotCode = code
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

func getSubjects(handler *CatalogHandler, code string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Get("/api/countries/{code}/subjects", handler.GetSubjects)

	req := httptest.NewRequest(http.MethodGet, "/api/countries/"+code+"/subjects", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCatalogHandlerGetSubjects(t *testing.T) {
	t.Parallel()

	provider := &stubCatalogProvider{catalog: testutils.ZACatalog(t)}
	handler := NewCatalogHandler(provider, testutils.NewTestLogger())

	rec := getSubjects(handler, "za")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ZA", provider.gotCode, "country codes are uppercased")

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ZA", resp.CountryCode)
	assert.NotEmpty(t, resp.Subjects)
	assert.Len(t, resp.EitherOrGroups, 2)
	assert.Contains(t, resp.MandatorySubjects, "LifeOrientation")
}

func TestCatalogHandlerRejectsBadCode(t *testing.T) {
	t.Parallel()

	handler := NewCatalogHandler(&stubCatalogProvider{}, testutils.NewTestLogger())

	rec := getSubjects(handler, "ZAF")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandlerCountryNotFound(t *testing.T) {
	t.Parallel()

	provider := &stubCatalogProvider{err: store.ErrCountryNotFound}
	handler := NewCatalogHandler(provider, testutils.NewTestLogger())

	rec := getSubjects(handler, "XX")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandlerUnavailable(t *testing.T) {
	t.Parallel()

	provider := &stubCatalogProvider{err: store.ErrCatalogUnavailable}
	handler := NewCatalogHandler(provider, testutils.NewTestLogger())

	rec := getSubjects(handler, "ZA")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
