package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-shop-keeper/internal/app"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	foundUser, err := h.services.UserService.GetUserByUsername(r.Context(), username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user lookup by username failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric user id in path")
		http.Error(w, app.MsgUserIDNotANumber, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup by id failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}
