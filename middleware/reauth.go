package middleware

import (
	"net/http"

	"campushub/globals"
	"campushub/rdx"

	"github.com/julienschmidt/httprouter"
)

// RequireReauth guards sensitive writes. The caller must present the
// single-use token issued by POST /api/auth/reauth; the token is consumed
// here so a replayed request fails. Must be wrapped inside Authenticate.
func RequireReauth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		userID, _ := r.Context().Value(globals.UserIDKey).(string)
		token := r.Header.Get("X-Reauth-Token")
		if token == "" {
			http.Error(w, "Reauthentication required", http.StatusUnauthorized)
			return
		}

		stored, err := rdx.RdxGetDel("reauth:" + userID)
		if err != nil || stored != token {
			http.Error(w, "Reauthentication failed, please verify again", http.StatusUnauthorized)
			return
		}

		next(w, r, ps)
	}
}
