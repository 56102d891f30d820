package handlers

import (
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// public routes
		r.Get("/health", h.HealthHandler)
		r.Post("/auth/signup", h.SignupHandler)
		r.Post("/auth/login", h.LoginHandler)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/profile/{userId}", h.GetProfileHandler)
			r.Put("/profile/{userId}", h.UpdateProfileHandler)

			r.Get("/tournaments", h.ListTournamentsHandler)
			r.Post("/tournaments", h.CreateTournamentHandler)
			r.Get("/tournaments/{id}", h.GetTournamentHandler)
			r.Put("/tournaments/{id}", h.UpdateTournamentHandler)
			r.Delete("/tournaments/{id}", h.DeleteTournamentHandler)
			r.Post("/tournaments/{id}/join", h.JoinTournamentHandler)

			r.Get("/wallet/{userId}", h.GetWalletHandler)
			r.Post("/wallet/{userId}/add", h.DepositHandler)
			r.Post("/wallet/{userId}/withdraw", h.WithdrawHandler)

			r.Get("/transactions/{userId}", h.ListUserTransactionsHandler)

			r.Post("/sessions", h.CreateSessionHandler)
			r.Put("/sessions/{id}", h.UpdateSessionHandler)
			r.Get("/sessions/user/{userId}", h.ListUserSessionsHandler)

			// admin routes
			r.Group(func(r chi.Router) {
				r.Use(h.adminOnly)

				r.Get("/admin/users", h.ListUsersHandler)
				r.Post("/admin/users/{id}/make-admin", h.MakeAdminHandler)
				r.Post("/admin/users/{id}/remove-admin", h.RemoveAdminHandler)
				r.Post("/admin/wallet/{id}/result", h.RecordResultHandler)
				r.Get("/admin/transactions", h.ListAllTransactionsHandler)
			})
		})
	})
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}
