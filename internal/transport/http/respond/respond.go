// Package respond writes JSON responses and maps service errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/corray333/backend-labs/cafe/internal/service/models/status"
	"github.com/corray333/backend-labs/cafe/internal/service/models/user"
	"github.com/corray333/backend-labs/cafe/internal/service/services/authsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/boardsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/cartsvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/menusvc"
	"github.com/corray333/backend-labs/cafe/internal/service/services/rewardsvc"
	"github.com/go-playground/validator/v10"
)

var ErrBadRequest = errors.New("bad request")

var validate = validator.New(validator.WithRequiredStructEnabled())

var badRequest = []error{
	ErrBadRequest,
	menu.ErrUnknownVariant,
	menu.ErrVariantRequired,
	menu.ErrInvalidItem,
	status.ErrInvalidStatus,
	menusvc.ErrNothingToUpdate,
	cartsvc.ErrInvalidSession,
	rewardsvc.ErrInvalidSession,
	authsvc.ErrInvalidSignup,
}

var unauthorized = []error{
	authsvc.ErrAuthFailed,
	user.ErrInvalidRole,
}

var notFound = []error{
	menusvc.ErrItemNotFound,
	cartsvc.ErrItemNotFound,
	boardsvc.ErrOrderNotFound,
	rewardsvc.ErrCardNotFound,
	rewardsvc.ErrRewardNotFound,
}

// JSON writes v with the status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}

// Decode reads a JSON body into v and checks its validate tags. Failures wrap ErrBadRequest.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", ErrBadRequest, err)
	}
	if err := validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil
		}

		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	return nil
}

// Error maps err to a status code and writes its message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		slog.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", code)

		return
	}

	http.Error(w, err.Error(), code)
}

// Status returns the status code for err.
func Status(err error) int {
	switch {
	case isAny(err, badRequest):
		return http.StatusBadRequest
	case isAny(err, unauthorized):
		return http.StatusUnauthorized
	case isAny(err, notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}

	return false
}
