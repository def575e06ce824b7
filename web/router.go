package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jthomisee/changing-500-sub000/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/groups", func(r chi.Router) {
		r.Get("/", listGroupsHandler(ctrl, render))
		r.Post("/", createGroupHandler(ctrl, render))

		r.Route("/{groupID}", func(r chi.Router) {
			r.Get("/", getGroupHandler(ctrl, render))

			r.Get("/members", listMembersHandler(ctrl, render))
			r.Post("/members", addMemberHandler(ctrl, render))
			r.Delete("/members/{userID}", removeMemberHandler(ctrl, render))

			r.Get("/games", listGamesHandler(ctrl, render))
			r.Post("/games", scheduleGameHandler(ctrl, render))
			r.Get("/games/upcoming", upcomingGamesHandler(ctrl, render))

			r.Get("/standings", standingsHandler(ctrl, render))
		})
	})

	r.Route("/games/{gameID}", func(r chi.Router) {
		r.Get("/", getGameHandler(ctrl, render))
		r.Put("/rsvp", updateRSVPHandler(ctrl, render))
		r.Post("/results", recordResultsHandler(ctrl, render))

		// CSV imports can be slower than normal API calls.
		r.With(middleware.Timeout(30 * time.Second)).
			Post("/results/import", importResultsHandler(ctrl, render))
	})

	return r
}
