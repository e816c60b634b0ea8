package users

import (
	"net/http"

	"github.com/user/croptrack-go/apperror"
	"github.com/user/croptrack-go/auth"
)

// UserHandlers provides HTTP handlers for profile endpoints.
type UserHandlers struct {
	service Service
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service Service) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleGetProfile godoc
// @Summary Get current user's profile
// @Description Retrieves profile information for the authenticated account.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.ProfileResponse "Profile information"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Account no longer exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/users/me [get]
func (h *UserHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		profile, err := h.service.GetProfile(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, profile)
	}
}
