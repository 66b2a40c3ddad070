package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourbrand/tours-backend/api/responses"
	"github.com/yourbrand/tours-backend/internal/catalog"
	pkgerrors "github.com/yourbrand/tours-backend/pkg/errors"
	"github.com/yourbrand/tours-backend/pkg/logger"
)

// ActivityDetail returns one activity with its description split into sections.
func ActivityDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		raw := strings.TrimSpace(chi.URLParam(r, "activityId"))
		id, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid activity id"))
			return
		}

		activity, err := svc.GetActivity(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, activity)
	}
}
