// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/app"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.ModifyCartRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	cart, err := h.services.CartService.AddToCart(r.Context(), request)
	if err != nil {
		log.Err(err).
			Str("username", request.Username).
			Int64("itemID", request.ItemID).
			Msg("adding to cart failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cart, http.StatusOK)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.ModifyCartRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	cart, err := h.services.CartService.RemoveFromCart(r.Context(), request)
	if err != nil {
		log.Err(err).
			Str("username", request.Username).
			Int64("itemID", request.ItemID).
			Msg("removing from cart failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cart, http.StatusOK)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	cart, err := h.services.CartService.GetCartByUsername(r.Context(), username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("cart lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cart, http.StatusOK)
}
