package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/meridianhq/hr-assistant/backend/internal/handler/chat"
	directoryHandler "github.com/meridianhq/hr-assistant/backend/internal/handler/directory"
	i18nHandler "github.com/meridianhq/hr-assistant/backend/internal/handler/i18n"
	wsHandler "github.com/meridianhq/hr-assistant/backend/internal/handler/ws"
	"github.com/meridianhq/hr-assistant/backend/internal/model/reference"
	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
	"github.com/meridianhq/hr-assistant/backend/internal/service/memory"
	"github.com/meridianhq/hr-assistant/backend/internal/service/orchestrator"
	"github.com/meridianhq/hr-assistant/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(data reference.Store, mem *memory.Store, orch *orchestrator.Service, historyLimit int) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/", handleHealth)

	r.Route("/api", func(api chi.Router) {
		chatHandler.New(orch, mem, historyLimit).RegisterRoutes(api)
		directoryHandler.New(data).RegisterRoutes(api)
		i18nHandler.New().RegisterRoutes(api)
		wsHandler.New(orch).RegisterRoutes(api)
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	agents := make([]string, 0, len(topic.All()))
	for _, t := range topic.All() {
		agents = append(agents, t.AgentName())
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":   "online",
		"message":  "HR Assistant API",
		"version":  "2.0.0",
		"agents":   agents,
		"features": []string{"conversation_memory", "multi_language"},
	})
}

// corsMiddleware allows the demo frontend to call the API from any origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
