package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/gameweeks", handler.GetGameweeks)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamCode}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/teams/{teamCode}/player-options", handler.ListTeamPlayerOptions)
	mux.HandleFunc("GET /v1/players/{playerID}/availability", handler.GetPlayerAvailability)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/ownership", handler.ListOwnership)
	mux.HandleFunc("GET /v1/managers", handler.ListManagers)
}
