package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/acasal/gastos/internal/auth"
	categoryHandler "github.com/acasal/gastos/internal/http/category"
	environmentHandler "github.com/acasal/gastos/internal/http/environment"
	expenseHandler "github.com/acasal/gastos/internal/http/expense"
	invitationHandler "github.com/acasal/gastos/internal/http/invitation"
	personHandler "github.com/acasal/gastos/internal/http/person"
)

func New(
	jwt *auth.JWTManager,
	allowedOrigins []string,
	peopleV1 *personHandler.Handler,
	environmentsV1 *environmentHandler.Handler,
	invitationsV1 *invitationHandler.Handler,
	categoriesV1 *categoryHandler.Handler,
	expensesV1 *expenseHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			peopleV1.Routes(r)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(jwt))
				peopleV1.ProtectedRoutes(r)
			})
		})

		r.Route("/invitations", func(r chi.Router) {
			invitationsV1.PublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(jwt))
				invitationsV1.Routes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwt))

			r.Route("/environments", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				environmentsV1.Routes(r)

				r.Route("/{environmentID}/people", func(r chi.Router) {
					peopleV1.EnvironmentRoutes(r)
					environmentsV1.PeopleRoutes(r)
				})
				r.Route("/{environmentID}/invitations", invitationsV1.EnvironmentRoutes)
				r.Route("/{environmentID}/categories", categoriesV1.Routes)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				expensesV1.Routes(r)
			})
		})
	})

	return router
}
