package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyProfile)))

	mux.Handle("GET /v1/predictions", RequireAuth(verifier, http.HandlerFunc(handler.ListMyPredictions)))
	mux.Handle("PUT /v1/matches/{matchID}/prediction", RequireAuth(verifier, http.HandlerFunc(handler.UpsertPrediction)))
	mux.Handle("DELETE /v1/matches/{matchID}/prediction", RequireAuth(verifier, http.HandlerFunc(handler.DeletePrediction)))

	mux.Handle("GET /v1/brackets", RequireAuth(verifier, http.HandlerFunc(handler.ListMyBracketPicks)))
	mux.Handle("PUT /v1/matches/{matchID}/bracket-pick", RequireAuth(verifier, http.HandlerFunc(handler.UpsertBracketPick)))

	mux.Handle("GET /v1/favorites", RequireAuth(verifier, http.HandlerFunc(handler.ListMyFavorites)))
	mux.Handle("POST /v1/matches/{matchID}/favorite", RequireAuth(verifier, http.HandlerFunc(handler.AddFavorite)))
	mux.Handle("DELETE /v1/matches/{matchID}/favorite", RequireAuth(verifier, http.HandlerFunc(handler.RemoveFavorite)))

	mux.Handle("GET /v1/preferences", RequireAuth(verifier, http.HandlerFunc(handler.GetMyPreferences)))
	mux.Handle("PUT /v1/preferences", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMyPreferences)))

	mux.Handle("POST /v1/groups", RequireAuth(verifier, http.HandlerFunc(handler.CreateGroup)))
	mux.Handle("POST /v1/groups/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinGroup)))
	mux.Handle("GET /v1/groups/{groupID}/ranking", RequireAuth(verifier, http.HandlerFunc(handler.GetGroupRanking)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/admin/matches/{matchID}/result", RequireAdmin(verifier, http.HandlerFunc(handler.FinalizeMatchResult)))
	mux.Handle("POST /v1/admin/import/schedule", RequireAdmin(verifier, http.HandlerFunc(handler.ImportSchedule)))
}
