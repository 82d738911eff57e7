package server

import (
	"net/http"

	"mpvremote/internal/domain/consts"
)

// requireAuth enforces the exact Authorization header match when a
// credential is configured. No credential file means open access.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.prefs.AuthHeader == "" || r.Header.Get("Authorization") == s.prefs.AuthHeader {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("WWW-Authenticate", consts.AuthRealm)
		w.WriteHeader(http.StatusUnauthorized)
	})
}
