package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/Dosada05/swiss-tables/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(ss services.StandingsService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: ss,
	}
}

// GetStandings godoc
// @Summary Current standings
// @Tags standings
// @Description Ordered by points, then wins, then participant id.
// @Produce json
// @Success 200 {object} map[string]interface{} "Ranked standings"
// @Router /api/standings [get]
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingsService.GetStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportStandings godoc
// @Summary Download standings as xlsx
// @Tags standings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Standings workbook"
// @Router /api/standings/export [get]
func (h *StandingsHandler) ExportStandings(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.standingsService.ExportStandingsXLSX(r.Context(), &buf); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	filename := fmt.Sprintf("standings-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ArchiveStandings godoc
// @Summary Archive standings to object storage
// @Tags standings
// @Produce json
// @Success 201 {object} services.ArchivedStandings
// @Failure 503 {object} map[string]string "Archive storage not configured"
// @Router /api/standings/archive [post]
func (h *StandingsHandler) ArchiveStandings(w http.ResponseWriter, r *http.Request) {
	archived, err := h.standingsService.ArchiveStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"archive": archived}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
