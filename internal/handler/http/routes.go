package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/create", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes protected by JWT auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/id/{id}", h.getUserByID)
		r.Get("/api/user/{username}", h.getUserByUsername)

		r.Get("/api/item", h.listItems)
		r.Get("/api/item/{id}", h.getItemByID)
		r.Get("/api/item/name/{name}", h.getItemsByName)

		r.Post("/api/cart/addToCart", h.addToCart)
		r.Post("/api/cart/removeFromCart", h.removeFromCart)
		r.Get("/api/cart/{username}", h.getCart)

		r.Post("/api/order/submit/{username}", h.submitOrder)
		r.Get("/api/order/history/{username}", h.getOrderHistory)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
