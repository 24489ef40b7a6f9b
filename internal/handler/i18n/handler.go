package i18n

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridianhq/hr-assistant/backend/internal/model/i18n"
	"github.com/meridianhq/hr-assistant/backend/pkg/utils"
)

// Handler serves the static language catalogue and UI translation tables.
type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// RegisterRoutes registers i18n routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/languages", h.handleListLanguages)
	r.Get("/translations/{code}", h.handleGetTranslations)
}

func (h *Handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"languages": i18n.Supported(),
		"default":   i18n.DefaultLanguage,
	})
}

func (h *Handler) handleGetTranslations(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	utils.RespondJSON(w, http.StatusOK, i18n.TranslationsFor(code))
}
