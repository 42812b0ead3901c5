package main

import (
	"errors"
	"net/http"

	"github.com/socialdots/site/internal/pricing"
)

type catalogResponse struct {
	Services []pricing.Service         `json:"services"`
	Tiers    []pricing.ComplexityTier  `json:"tiers"`
	Bounds   map[string]pricing.Bounds `json:"bounds"`
}

type estimateResponse struct {
	pricing.Result
	FormattedTotal string `json:"formatted_total"`
}

func (s *server) handlePricingCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Services: s.catalog.Services(),
		Tiers:    s.catalog.Tiers(),
		Bounds: map[string]pricing.Bounds{
			"complexity":     pricing.SliderBounds.Complexity,
			"timeline_weeks": pricing.SliderBounds.TimelineWeeks,
			"team_size":      pricing.SliderBounds.TeamSize,
		},
	})
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req pricing.Request
	if !s.decodeValid(w, r, &req) {
		return
	}

	result, err := s.catalog.Estimate(req)
	if err != nil {
		writeError(w, mapEstimateError(err))
		return
	}

	writeJSON(w, http.StatusOK, estimateResponse{
		Result:         result,
		FormattedTotal: pricing.FormatPrice(result.Total),
	})
}

func mapEstimateError(err error) apiError {
	var (
		unknown    *pricing.UnknownServiceError
		complexity *pricing.InvalidComplexityError
		input      *pricing.InvalidInputError
	)
	switch {
	case errors.As(err, &unknown):
		return apiError{Status: http.StatusBadRequest, Code: "UNKNOWN_SERVICE", Message: err.Error()}
	case errors.As(err, &complexity):
		return apiError{Status: http.StatusBadRequest, Code: "INVALID_COMPLEXITY", Message: err.Error()}
	case errors.As(err, &input):
		return apiError{Status: http.StatusBadRequest, Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return errInternal
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"max=1000"`
}

func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, s.chat.Reply(req.Message))
}
