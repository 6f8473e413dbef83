package routes

import (
	"github.com/Dosada05/league-backend/handlers"
	"github.com/Dosada05/league-backend/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
)

type Handlers struct {
	Announcement *handlers.AnnouncementHandler
	Tournament   *handlers.TournamentHandler
	Team         *handlers.TeamHandler
	Auth         *handlers.AuthHandler
	Standings    *handlers.StandingsHandler
	Report       *handlers.ReportHandler
}

// SetupRoutes регистрирует все маршруты API. Пути оканчиваются слэшем —
// так их ожидает веб-клиент.
func SetupRoutes(router *chi.Mux, h Handlers, allowedOrigins []string, jwtSecret []byte) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/announcements/", h.Announcement.ListAnnouncements)

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.Tournament.ListTournaments)
		r.Get("/{tournamentID}/", h.Tournament.GetTournament)
		r.Get("/{tournamentID}/fixtures/", h.Tournament.ListFixtures)
	})

	router.Get("/teams/", h.Team.ListTeams)
	router.Post("/teams/", h.Team.CreateTeam)

	router.Post("/register/", h.Auth.Register)
	router.Post("/login/", h.Auth.Login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Get("/me/", h.Auth.Me)
	})

	router.Post("/join-tournament/", h.Tournament.JoinTournament)
	router.Post("/report/", h.Report.SubmitReport)

	router.Get("/standings/", h.Standings.GetGlobalStandings)
	router.Get("/standings/{tournamentID}/", h.Standings.GetTournamentStandings)
}
