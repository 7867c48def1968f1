package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luismarketmedia/dash-fut/handlers"
	"github.com/luismarketmedia/dash-fut/middleware"
	"github.com/luismarketmedia/dash-fut/services"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Workspace  *handlers.WorkspaceHandler
	Roster     *handlers.RosterHandler
	Tournament *handlers.TournamentHandler
	Match      *handlers.MatchHandler
	WebSocket  *handlers.WebSocketHandler
}

func InitRoutes(h Handlers, jwtSecret string, workspaceService services.WorkspaceService) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Post("/auth/register", h.Auth.Register)
	router.Post("/auth/login", h.Auth.Login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.Get("/auth/me", h.Auth.Me)

		r.Route("/workspaces", func(r chi.Router) {
			r.Get("/", h.Workspace.List)
			r.Post("/", h.Workspace.Create)

			r.Route("/{workspaceID}", func(r chi.Router) {
				r.Use(middleware.RequireWorkspace(workspaceService))

				r.Post("/select", h.Workspace.Select)
				r.Get("/members", h.Workspace.ListMembers)
				r.Post("/members", h.Workspace.AddMember)
				r.Delete("/members/{userID}", h.Workspace.RemoveMember)

				r.Get("/state", h.Tournament.State)
				r.Post("/demo", h.Tournament.SeedDemo)
				r.Post("/reset", h.Tournament.ResetPhases)

				r.Route("/categories", func(r chi.Router) {
					r.Post("/", h.Roster.CreateCategory)
					r.Put("/{categoryID}", h.Roster.UpdateCategory)
					r.Delete("/{categoryID}", h.Roster.DeleteCategory)
					r.Post("/{categoryID}/select", h.Roster.SelectCategory)

					r.Post("/{categoryID}/draw", h.Tournament.PerformDraw)
					r.Post("/{categoryID}/phases/group", h.Tournament.GenerateGroupStage)
					r.Post("/{categoryID}/phases/{phase}", h.Tournament.GenerateEliminationStage)
					r.Get("/{categoryID}/standings", h.Tournament.Standings)
					r.Get("/{categoryID}/weeks", h.Tournament.Weeks)
					r.Get("/{categoryID}/scorers", h.Tournament.TopScorers)
				})

				r.Route("/players", func(r chi.Router) {
					r.Post("/", h.Roster.CreatePlayer)
					r.Put("/{playerID}", h.Roster.UpdatePlayer)
					r.Delete("/{playerID}", h.Roster.DeletePlayer)
				})

				r.Route("/teams", func(r chi.Router) {
					r.Post("/", h.Roster.CreateTeam)
					r.Put("/{teamID}", h.Roster.UpdateTeam)
					r.Delete("/{teamID}", h.Roster.DeleteTeam)
				})

				r.Route("/matches", func(r chi.Router) {
					r.Delete("/", h.Match.Clear)

					r.Route("/{matchID}", func(r chi.Router) {
						r.Delete("/", h.Match.Delete)
						r.Post("/clock/toggle", h.Match.ToggleClock)
						r.Post("/clock/reset", h.Match.ResetClock)
						r.Post("/clock/next-half", h.Match.NextHalf)
						r.Put("/teams", h.Match.EditTeams)

						r.Post("/players/{playerID}/goals", h.Match.AddGoal)
						r.Post("/players/{playerID}/yellow", h.Match.AddYellow)
						r.Post("/players/{playerID}/red", h.Match.ToggleRed)
						r.Post("/players/{playerID}/destaque", h.Match.ToggleDestaque)
					})
				})

				r.Get("/ws", h.WebSocket.Serve)
			})
		})
	})

	return router
}
