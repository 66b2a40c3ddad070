package controllers

import (
	"net/http"

	"github.com/yourbrand/tours-backend/api/middleware"
	"github.com/yourbrand/tours-backend/api/responses"
	"github.com/yourbrand/tours-backend/api/validators"
	"github.com/yourbrand/tours-backend/internal/adminauth"
	pkgerrors "github.com/yourbrand/tours-backend/pkg/errors"
	"github.com/yourbrand/tours-backend/pkg/logger"
)

type adminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminAuthLogin exchanges the shared dashboard password for a session token.
func AdminAuthLogin(svc adminauth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body adminLoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminAuthLogout revokes the session behind the presented token.
func AdminAuthLogout(svc adminauth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		tokenID := middleware.AdminTokenIDFromContext(r.Context())
		if tokenID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session context missing"))
			return
		}

		if err := svc.Logout(r.Context(), tokenID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, nil)
	}
}
