package controllers

import (
	"net/http"

	"github.com/mkoval-dev/bookmarket-backend/api/responses"
	pkgerrors "github.com/mkoval-dev/bookmarket-backend/pkg/errors"
	"github.com/mkoval-dev/bookmarket-backend/pkg/kvstore"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
)

// HealthLive reports process liveness only.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// HealthReady additionally checks the storage backend.
func HealthReady(storage kvstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := storage.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage unreachable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
