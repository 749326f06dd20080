package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"fuji-trip/tripmap/internal/api"
	"fuji-trip/tripmap/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers) {
	refreshLimiter := middleware.NewIPRateLimiter(rate.Every(10*time.Second), 3)

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Post("/auth/login", handlers.Login())
		v1.Post("/auth/logout", handlers.Logout())
		v1.Get("/auth/session", handlers.CurrentSession())

		v1.Get("/itinerary", handlers.GetItinerary())
		v1.Get("/itinerary/days/{day}", handlers.GetDay())

		v1.Get("/events/{eventID}", handlers.GetEvent())
		v1.Put("/events/{eventID}/details", handlers.SaveEventDetails())
		v1.Put("/events/{eventID}/location", handlers.SaveEventLocation())
		v1.Get("/events/{eventID}/map-link", handlers.GetMapLink())

		v1.Get("/bookings", handlers.GetBookings())
		v1.Get("/flights", handlers.GetFlights())

		v1.Get("/weather", handlers.GetWeather())
		v1.With(refreshLimiter.Middleware).Post("/weather/refresh", handlers.RefreshWeather())

		v1.Get("/export/markdown", handlers.ExportMarkdown())

		v1.Get("/checklist", handlers.GetChecklist())
		// Checklist mutations need a logged-in session
		v1.Group(func(member chi.Router) {
			member.Use(middleware.RequireLogin)
			member.Post("/checklist/items/{itemID}/toggle", handlers.ToggleChecklistItem())
			member.Post("/checklist/categories/{categoryID}/items", handlers.AddChecklistItem())
			member.Delete("/checklist/items/{itemID}", handlers.DeleteChecklistItem())
			member.Post("/checklist/reset", handlers.ResetChecklist())
		})

		v1.Route("/view", func(view chi.Router) {
			view.Get("/", handlers.GetView())
			view.Post("/tab", handlers.SelectTab())
			view.Post("/day", handlers.SelectDay())
			view.Post("/filter", handlers.FilterItinerary())
			view.Post("/focus/{eventID}", handlers.FocusEvent())
			view.Post("/events/{eventID}/toggle", handlers.ToggleExpandedEvent())
			view.Post("/toggle/{flag}", handlers.ToggleFlag())
			view.Post("/categories/{categoryID}/toggle", handlers.ToggleCategory())
			view.Post("/categories/expand-all", handlers.ExpandAllCategories())
			view.Post("/categories/collapse-all", handlers.CollapseAllCategories())
		})
	})
}
