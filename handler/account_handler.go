package handler

import (
	"encoding/json"
	"net/http"

	"mock-bank-api/common"
	"mock-bank-api/model"
	"mock-bank-api/service"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(s *service.AccountService) *AccountHandler {
	return &AccountHandler{service: s}
}

// ListMyAccounts godoc
// @Summary      List the caller's accounts
// @Description  Returns every account owned by the authenticated user, in store order.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.AccountListResponse
// @Failure      401  {object}  common.AppError
// @Router       /api/accounts/me [get]
func (h *AccountHandler) ListMyAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil)
	}

	accounts, err := h.service.ListAccountsForUser(userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve accounts", err)
	}
	if accounts == nil {
		accounts = []*model.Account{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(model.AccountListResponse{Accounts: accounts})
	return nil
}
