package preference

import (
	"net/http"

	"github.com/frahmantamala/hr-dashboard/internal/store"
	"github.com/frahmantamala/hr-dashboard/internal/transport"
)

type StateAPI interface {
	State() store.State
	ToggleDarkMode() bool
}

type Handler struct {
	*transport.BaseHandler
	State StateAPI
}

func NewHandler(baseHandler *transport.BaseHandler, state StateAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		State:       state,
	}
}

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p := store.Partialize(h.State.State())
	h.WriteJSON(w, http.StatusOK, PreferencesResponse{
		BookmarkedUsers: p.BookmarkedUsers,
		DarkMode:        p.DarkMode,
	})
}

func (h *Handler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	dark := h.State.ToggleDarkMode()
	h.Logger.Info("ToggleDarkMode: dark mode toggled", "dark_mode", dark)
	h.WriteJSON(w, http.StatusOK, DarkModeResponse{DarkMode: dark})
}
