// Package rest exposes the planner as a JSON API under /api.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/simaogato/savings-planner/internal/adapter/dto"
	"github.com/simaogato/savings-planner/internal/usecase/projection"
	"github.com/simaogato/savings-planner/internal/usecase/report"
)

// maxBodyBytes caps request bodies; expense lists are small
const maxBodyBytes = 1 << 20

// Handler serves the /api routes on top of the report service
type Handler struct {
	ReportService *report.ReportService
	logger        logrus.FieldLogger
}

// NewHandler creates a new Handler instance
func NewHandler(reportService *report.ReportService, logger logrus.FieldLogger) *Handler {
	return &Handler{
		ReportService: reportService,
		logger:        logger,
	}
}

// Root answers the liveness check
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, map[string]string{"message": "Hello World"})
}

// CalculateProjection handles POST /api/calculate-projection
func (h *Handler) CalculateProjection(w http.ResponseWriter, r *http.Request) {
	data, err := dto.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, dto.NewProjectionResponse(projection.Calculate(data)))
}

// ExportExcel handles POST /api/export-excel and streams back the xlsx report
func (h *Handler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	data, err := dto.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	file, err := h.ReportService.Render(r.Context(), data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+file.Filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		h.logger.WithError(err).WithField("request_id", RequestID(r.Context())).Warn("failed to write report")
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// writeError maps invalid input to 422 and everything else to 500
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, dto.ErrInvalidInput) {
		_ = writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	h.logger.WithError(err).WithField("request_id", RequestID(r.Context())).Error("request failed")
	_ = writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Internal Server Error"})
}

// respond writes body as JSON, or a 500 when it cannot be encoded
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := writeJSON(w, status, body); err != nil {
		h.writeError(w, r, fmt.Errorf("failed to encode response: %w", err))
	}
}

// writeJSON encodes body before touching w, so a failed encode leaves the response unwritten
func writeJSON(w http.ResponseWriter, status int, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(payload, '\n'))
	return nil
}
