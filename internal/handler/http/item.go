package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-shop-keeper/internal/app"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		log.Err(err).Msg("catalog listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItemByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric item id in path")
		http.Error(w, app.MsgItemIDNotANumber, http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.GetItemByID(r.Context(), itemID)
	if err != nil {
		log.Err(err).Int64("id", itemID).Msg("item lookup by id failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) getItemsByName(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// catalog names contain spaces, so the path segment arrives escaped
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	items, err := h.services.ItemService.GetItemsByName(r.Context(), name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("item lookup by name failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}
