package controllers

import (
	"net/http"

	"github.com/mkoval-dev/bookmarket-backend/api/responses"
	pkgerrors "github.com/mkoval-dev/bookmarket-backend/pkg/errors"
	"github.com/mkoval-dev/bookmarket-backend/pkg/kvstore"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
)

// IntroComplete records that the first-visit intro screen was dismissed.
// The flag is write-only: nothing in the backend reads it back.
func IntroComplete(storage kvstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := storage.Set(r.Context(), kvstore.KeyHasSeenIntro, "true"); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist intro flag"))
			return
		}
		responses.WriteSuccess(w, map[string]bool{"has_seen_intro": true})
	}
}
