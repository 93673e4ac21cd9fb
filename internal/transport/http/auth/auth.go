package auth

import (
	"context"
	"net/http"

	"github.com/corray333/backend-labs/cafe/internal/service/models/user"
	"github.com/corray333/backend-labs/cafe/internal/service/services/authsvc"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	Login(ctx context.Context, creds user.Credentials) (authsvc.Session, error)
	Signup(ctx context.Context, req user.Signup) (string, error)
}

func Login(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds user.Credentials
		if err := respond.Decode(r, &creds); err != nil {
			respond.Error(w, r, err)
			return
		}

		sess, err := svc.Login(r.Context(), creds)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, sess)
	}
}

func Signup(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req user.Signup
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		id, err := svc.Signup(r.Context(), req)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusCreated, map[string]string{"user_id": id})
	}
}
