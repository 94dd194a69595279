// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	order, err := h.services.OrderService.SubmitOrder(r.Context(), username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("order submission failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Info().
		Int64("orderID", order.OrderID).
		Str("username", username).
		Str("total", order.Total.String()).
		Msg("order submitted")

	utils.WriteJSON(w, order, http.StatusOK)
}

func (h *Handler) getOrderHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	orders, err := h.services.OrderService.GetOrderHistory(r.Context(), username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("order history lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}
