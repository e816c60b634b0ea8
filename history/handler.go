package history

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/croptrack-go/apperror"
	"github.com/user/croptrack-go/auth"
)

// Handler handles HTTP requests for the prediction history endpoints.
type Handler struct {
	service Service
}

// NewHandler creates a new history Handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history routes on a chi subrouter. The
// caller is expected to have mounted the auth middleware on the group.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.listHistory)
	router.Post("/", h.saveRecord)
}

// listHistory godoc
// @Summary Get prediction history
// @Description Returns the authenticated user's prediction records, newest first.
// @Tags History
// @Produce json
// @Security BearerAuth
// @Success 200 {array} history.Record "Prediction records"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Account no longer exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/history [get]
func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
		return
	}

	records, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, records)
}

// saveRecord godoc
// @Summary Save a prediction
// @Description Appends a prediction record to the authenticated user's history.
// @Tags History
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recordBody body history.NewRecordRequest true "Measurements and predicted crop"
// @Success 201 {object} history.Record "Stored record with assigned id and timestamp"
// @Failure 400 {object} apperror.ErrorResponse "Missing predicted crop"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Account no longer exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/history [post]
func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
		return
	}

	var req NewRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	record, err := h.service.AddRecord(r.Context(), userID, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusCreated, record)
}
