package handler

import (
	"net/http"

	"forumapi/internal/api"
	"forumapi/internal/utils"
)

type Pinger interface {
	Ping() error
}

// Health reports whether the API can reach its database.
func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			utils.WriteJSON(w, http.StatusServiceUnavailable, api.Error("database unavailable"))
			return
		}
		utils.WriteJSON(w, http.StatusOK, api.Success(nil))
	}
}
