package handlers

import (
	"net/http"

	"github.com/Dosada05/league-backend/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

func (h *StandingsHandler) GetGlobalStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingsService.GlobalStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	err = writeJSON(w, http.StatusOK, standings, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StandingsHandler) GetTournamentStandings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.standingsService.TournamentStandings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	err = writeJSON(w, http.StatusOK, standings, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}
