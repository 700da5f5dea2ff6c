// Package api provides HTTP handlers for the API.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gradepath/gradepath-api/internal/api/shared"
	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/platform/logger"
	"github.com/gradepath/gradepath-api/internal/service"
)

// EligibilityProvider is the service surface the handler depends on.
type EligibilityProvider interface {
	Evaluate(
		ctx context.Context,
		grades domain.GradeSet,
		careerName, countryCode string,
		enforce *bool,
	) ([]service.LevelEligibility, error)
	Improvements(
		ctx context.Context,
		grades domain.GradeSet,
		careerName, countryCode string,
		enforce *bool,
	) ([]service.LevelImprovements, error)
	Universities(
		ctx context.Context,
		grades domain.GradeSet,
		careerName, countryCode string,
		enforce *bool,
	) (*service.UniversityReport, error)
}

// EligibilityHandler handles evaluation-related HTTP requests.
type EligibilityHandler struct {
	eligibility EligibilityProvider
	logger      *slog.Logger
}

// NewEligibilityHandler creates a new EligibilityHandler.
func NewEligibilityHandler(
	eligibility EligibilityProvider,
	baseLogger *slog.Logger,
) *EligibilityHandler {
	if baseLogger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for EligibilityHandler")
	}

	return &EligibilityHandler{
		eligibility: eligibility,
		logger:      baseLogger.With(slog.String("component", "eligibility_handler")),
	}
}

// Evaluate handles POST /eligibility requests.
// It classifies the submitted grades against every qualification level
// of the career.
func (h *EligibilityHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, grades, ok := h.decode(w, r)
	if !ok {
		return
	}

	levels, err := h.eligibility.Evaluate(
		r.Context(), grades, req.Career, req.CountryCode, req.EnforceCompulsorySubjects)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("eligibility evaluated",
		slog.String("career", req.Career),
		slog.String("country_code", req.CountryCode),
		slog.Int("levels", len(levels)))

	shared.RespondWithJSON(w, r, http.StatusOK, EligibilityResponse{
		Career:      req.Career,
		CountryCode: req.CountryCode,
		Levels:      levels,
	})
}

// Improvements handles POST /improvements requests.
// It reports the exact point deficit per attempted, unmet requirement.
func (h *EligibilityHandler) Improvements(w http.ResponseWriter, r *http.Request) {
	req, grades, ok := h.decode(w, r)
	if !ok {
		return
	}

	levels, err := h.eligibility.Improvements(
		r.Context(), grades, req.Career, req.CountryCode, req.EnforceCompulsorySubjects)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ImprovementsResponse{
		Career:      req.Career,
		CountryCode: req.CountryCode,
		Levels:      levels,
	})
}

// Universities handles POST /universities requests.
// It computes the APS score and ranks institutions by accessibility.
func (h *EligibilityHandler) Universities(w http.ResponseWriter, r *http.Request) {
	req, grades, ok := h.decode(w, r)
	if !ok {
		return
	}

	report, err := h.eligibility.Universities(
		r.Context(), grades, req.Career, req.CountryCode, req.EnforceCompulsorySubjects)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UniversitiesResponse{
		Career:       req.Career,
		CountryCode:  req.CountryCode,
		APS:          report.APS,
		Institutions: report.Institutions,
	})
}

// decode parses and validates the shared request body, coercing grades
// at the ingestion boundary. Writes the error response itself when the
// request is malformed.
func (h *EligibilityHandler) decode(
	w http.ResponseWriter,
	r *http.Request,
) (*EvaluationRequest, domain.GradeSet, bool) {
	var req EvaluationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return nil, nil, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request data")
		return nil, nil, false
	}

	return &req, domain.ParseGradeSet(req.Grades), true
}
