package handlers

import (
	"net/http"

	"github.com/Dosada05/league-backend/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var input services.ReportInput
	err := readJSON(w, r, &input)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	ack, err := h.reportService.SubmitReport(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	err = writeJSON(w, http.StatusCreated, ack, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}
