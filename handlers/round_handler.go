package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tables/services"
)

type RoundHandler struct {
	roundService services.RoundService
}

func NewRoundHandler(rs services.RoundService) *RoundHandler {
	return &RoundHandler{
		roundService: rs,
	}
}

// GenerateNextRound godoc
// @Summary Pair the next round
// @Tags rounds
// @Description Creates round N+1 and seats every participant by current standings,
// @Description avoiding players who already met. The previous round does not need to be complete.
// @Description The GET form on /api/matches/next creates a round too; it is not safe to retry or prefetch.
// @Produce json
// @Success 201 {object} services.GeneratedRound "Round and its tables"
// @Failure 409 {object} map[string]string "No participants registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/rounds/next [post]
// @Router /api/matches/next [get]
func (h *RoundHandler) GenerateNextRound(w http.ResponseWriter, r *http.Request) {
	generated, err := h.roundService.GenerateNextRound(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, generated, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListRounds godoc
// @Summary List rounds
// @Tags rounds
// @Produce json
// @Success 200 {object} map[string]interface{} "Rounds, latest first"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/rounds [get]
func (h *RoundHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.roundService.ListRounds(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"rounds": rounds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetRoundTables godoc
// @Summary Tables of a round
// @Tags rounds
// @Produce json
// @Param roundID path int true "Round ID"
// @Success 200 {object} services.RoundView
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Round not found"
// @Router /api/rounds/{roundID}/tables [get]
// @Router /api/matches/round/{roundID} [get]
func (h *RoundHandler) GetRoundTables(w http.ResponseWriter, r *http.Request) {
	roundID, err := getIDFromURL(r, "roundID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.roundService.GetRoundTables(r.Context(), roundID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetCurrentRound godoc
// @Summary Latest round
// @Tags rounds
// @Description Returns the latest round with its tables; round is null before the first pairing.
// @Produce json
// @Success 200 {object} services.RoundView
// @Router /api/matches/current [get]
func (h *RoundHandler) GetCurrentRound(w http.ResponseWriter, r *http.Request) {
	view, err := h.roundService.GetCurrentRound(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
