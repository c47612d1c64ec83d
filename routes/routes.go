package routes

import (
	"net/http"

	_ "github.com/Dosada05/swiss-tables/docs"
	"github.com/Dosada05/swiss-tables/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	participantHandler *handlers.ParticipantHandler,
	roundHandler *handlers.RoundHandler,
	matchHandler *handlers.MatchHandler,
	standingsHandler *handlers.StandingsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Get("/ws/tournament", webSocketHandler.ServeWs)

	router.Route("/api", func(r chi.Router) {
		r.Route("/participants", func(r chi.Router) {
			r.Get("/", participantHandler.ListParticipants)
			r.Post("/", participantHandler.RegisterParticipant)
			r.Delete("/{participantID}", participantHandler.DeleteParticipant)
		})

		r.Route("/rounds", func(r chi.Router) {
			r.Get("/", roundHandler.ListRounds)
			r.Post("/next", roundHandler.GenerateNextRound)
			r.Get("/{roundID}/tables", roundHandler.GetRoundTables)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", matchHandler.SubmitResults)
			// Paths kept for older front-ends. GET /next creates a round.
			r.Get("/next", roundHandler.GenerateNextRound)
			r.Get("/round/{roundID}", roundHandler.GetRoundTables)
			r.Get("/current", roundHandler.GetCurrentRound)
			r.Get("/{tableID}", matchHandler.GetMatch)
			r.Put("/{tableID}/results", matchHandler.EditResults)
		})

		r.Route("/standings", func(r chi.Router) {
			r.Get("/", standingsHandler.GetStandings)
			r.Get("/export", standingsHandler.ExportStandings)
			r.Post("/archive", standingsHandler.ArchiveStandings)
		})

		r.Post("/clear", participantHandler.ClearTournament)
	})
}
