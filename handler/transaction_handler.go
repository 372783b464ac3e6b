package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mock-bank-api/common"
	"mock-bank-api/model"
	"mock-bank-api/service"
)

// TransactionHandler holds dependencies for transaction-related
// handlers.
type TransactionHandler struct {
	service *service.TransactionService
}

func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// ListTransactions godoc
// @Summary      List the caller's transactions
// @Description  Returns transactions across all accounts owned by the authenticated user, newest first. The limit defaults to 50 and is capped at 100.
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of transactions to return"
// @Success      200  {object}  model.TransactionListResponse
// @Failure      401  {object}  common.AppError
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil)
	}

	// Anything that is not a positive integer falls back to the
	// default inside the service.
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	transactions, err := h.service.ListTransactionsForUser(userID, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(model.TransactionListResponse{Transactions: transactions})
	return nil
}

// GetTransaction godoc
// @Summary      Fetch a single transaction
// @Description  Returns the transaction with the given id if it belongs to the authenticated user. A transaction owned by another user is indistinguishable from a missing one.
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Transaction id"
// @Success      200  {object}  model.Transaction
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Transaction not found"
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil)
	}

	tx, err := h.service.GetTransactionForUser(userID, r.PathValue("id"))
	if err != nil {
		switch err {
		case service.ErrTransactionNotFound:
			return common.NewAppError(http.StatusNotFound, "Transaction not found", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transaction", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tx)
	return nil
}

// CreateTransaction godoc
// @Summary      Create a transaction
// @Description  Validates and normalizes the payload, then appends the transaction to the caller's first account.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transaction body model.CreateTransactionRequest true "Transaction payload"
// @Success      201  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "Invalid amount or no account for user"
// @Failure      401  {object}  common.AppError
// @Router       /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil)
	}

	var req model.CreateTransactionRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	tx, err := h.service.CreateTransaction(userID, req)
	if err != nil {
		switch err {
		case service.ErrNoAccountForUser:
			return common.NewAppError(http.StatusBadRequest, "No account found for user", nil)
		case service.ErrInvalidAmount:
			return common.NewAppError(http.StatusBadRequest, "Invalid amount", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create transaction", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tx)
	return nil
}
