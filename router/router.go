package router

import (
	"net/http"

	"mock-bank-api/common"
	"mock-bank-api/handler"
	"mock-bank-api/service"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// methods maps HTTP methods to handlers for a single path. An
// undefined method falls through to the same JSON not-found response
// as an unmatched path, mirroring a catch-all route.
type methods map[string]http.Handler

func (m methods) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := m[r.Method]; ok {
		h.ServeHTTP(w, r)
		return
	}
	routeNotFound(r).Send(w)
}

func routeNotFound(r *http.Request) *common.AppError {
	appErr := common.NewAppError(http.StatusNotFound, "Not found", nil)
	appErr.Path = r.URL.Path
	return appErr
}

// NewRouter registers all routes. The CORS middleware wraps the whole
// mux so preflight requests never reach route logic.
func NewRouter(userHandler *handler.UserHandler, accountHandler *handler.AccountHandler, transactionHandler *handler.TransactionHandler, tokens service.TokenService) http.Handler {
	mux := http.NewServeMux()
	auth := handler.AuthMiddleware(tokens)

	mux.HandleFunc("/health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.Handle("/api/auth/login", methods{
		http.MethodPost: handler.ErrorHandlingMiddleware(userHandler.Login),
	})

	mux.Handle("/api/accounts/me", methods{
		http.MethodGet: auth(handler.ErrorHandlingMiddleware(accountHandler.ListMyAccounts)),
	})

	mux.Handle("/api/transactions", methods{
		http.MethodGet:  auth(handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions)),
		http.MethodPost: auth(handler.ErrorHandlingMiddleware(transactionHandler.CreateTransaction)),
	})

	mux.Handle("/api/transactions/{id}", methods{
		http.MethodGet: auth(handler.ErrorHandlingMiddleware(transactionHandler.GetTransaction)),
	})

	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		routeNotFound(r).Send(w)
	}))

	return handler.CORSMiddleware(mux)
}
