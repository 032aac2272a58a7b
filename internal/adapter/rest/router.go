package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the /api routes behind the logging and CORS middleware
func NewRouter(h *Handler, corsOrigins []string, logger logrus.FieldLogger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Not Found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "Method Not Allowed"})
	})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/", h.Root).Methods(http.MethodGet)
	api.HandleFunc("/calculate-projection", h.CalculateProjection).Methods(http.MethodPost)
	api.HandleFunc("/export-excel", h.ExportExcel).Methods(http.MethodPost)

	// CORS wraps the router so preflights are answered before method matching
	return RequestLogger(logger)(CORS(corsOrigins)(r))
}
