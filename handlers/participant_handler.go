package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tables/services"
)

type ParticipantHandler struct {
	participantService services.ParticipantService
}

func NewParticipantHandler(ps services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: ps,
	}
}

type registerParticipantInput struct {
	Name string `json:"name"`
}

// ListParticipants godoc
// @Summary List participants
// @Tags participants
// @Produce json
// @Success 200 {object} map[string]interface{} "participants ordered by id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/participants [get]
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.participantService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participants": participants}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RegisterParticipant godoc
// @Summary Register a participant
// @Tags participants
// @Description Adds a player with zeroed counters. The name is trimmed and required.
// @Accept json
// @Produce json
// @Param body body registerParticipantInput true "Participant name"
// @Success 201 {object} map[string]interface{} "Participant created"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/participants [post]
func (h *ParticipantHandler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	var input registerParticipantInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.participantService.Register(r.Context(), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"participant": participant}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteParticipant godoc
// @Summary Remove a participant
// @Tags participants
// @Description Removes the player, their seats and their result rows.
// @Param participantID path int true "Participant ID"
// @Success 204 "Participant removed"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Participant not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/participants/{participantID} [delete]
func (h *ParticipantHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.participantService.Delete(r.Context(), participantID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearTournament godoc
// @Summary Clear the tournament
// @Tags participants
// @Description Deletes every result, table, round and participant.
// @Produce json
// @Success 200 {object} map[string]string "Tournament cleared"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/clear [post]
func (h *ParticipantHandler) ClearTournament(w http.ResponseWriter, r *http.Request) {
	if err := h.participantService.ClearAll(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "tournament cleared"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
