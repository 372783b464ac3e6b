package handler

import (
	"encoding/json"
	"net/http"

	"mock-bank-api/common"
	"mock-bank-api/model"
	"mock-bank-api/service"
)

type UserHandler struct {
	service *service.AuthService
}

func NewUserHandler(s *service.AuthService) *UserHandler {
	return &UserHandler{service: s}
}

// Login godoc
// @Summary      Authenticate with email and password
// @Description  Verifies a credential pair and returns a bearer token together with the user record.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Login credentials"
// @Success      200  {object}  model.LoginResponse
// @Failure      401  {object}  common.AppError "Invalid email or password"
// @Router       /api/auth/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	// A structurally invalid credential can never match a user, so it
	// fails the same way a mismatch does.
	if err := common.Validate(&req); err != nil {
		return common.NewAppError(http.StatusUnauthorized, "Invalid email or password", nil)
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return common.NewAppError(http.StatusUnauthorized, "Invalid email or password", nil)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
	return nil
}
