package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tables/services"
)

type MatchHandler struct {
	resultService services.ResultService
}

func NewMatchHandler(rs services.ResultService) *MatchHandler {
	return &MatchHandler{
		resultService: rs,
	}
}

type submitResultsInput struct {
	MatchID int                    `json:"match_id"`
	Results []services.ResultInput `json:"results"`
}

type editResultsInput struct {
	Results []services.ResultInput `json:"results"`
}

// GetMatch godoc
// @Summary Table with results
// @Tags matches
// @Produce json
// @Param tableID path int true "Table ID"
// @Success 200 {object} services.MatchDetail
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Table not found"
// @Router /api/matches/{tableID} [get]
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	tableID, err := getIDFromURL(r, "tableID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	detail, err := h.resultService.GetMatchWithResults(r.Context(), tableID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, detail, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitResults godoc
// @Summary Submit table results
// @Tags matches
// @Description Records results for a table, or replaces them when the table is already complete.
// @Description Counters are the players' new cumulative totals.
// @Accept json
// @Produce json
// @Param body body submitResultsInput true "Table ID and per-player results"
// @Success 200 {object} map[string]interface{} "Stored result rows"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Table not found"
// @Failure 422 {object} map[string]string "match_id missing"
// @Router /api/matches [post]
func (h *MatchHandler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	var input submitResultsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.MatchID <= 0 {
		failedValidationResponse(w, r, map[string]string{"match_id": "must be a positive table id"})
		return
	}

	results, err := h.resultService.SubmitResults(r.Context(), input.MatchID, input.Results)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"results": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// EditResults godoc
// @Summary Replace table results
// @Tags matches
// @Accept json
// @Produce json
// @Param tableID path int true "Table ID"
// @Param body body editResultsInput true "Per-player results"
// @Success 200 {object} map[string]interface{} "Stored result rows"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Table not found"
// @Router /api/matches/{tableID}/results [put]
func (h *MatchHandler) EditResults(w http.ResponseWriter, r *http.Request) {
	tableID, err := getIDFromURL(r, "tableID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input editResultsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	results, err := h.resultService.EditResults(r.Context(), tableID, input.Results)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"results": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
