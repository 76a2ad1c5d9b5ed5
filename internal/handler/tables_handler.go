package handlers

import (
	"log"
	"net/http"
)

type TablesResponse struct {
	Status      string `json:"status"`
	CountTables int    `json:"countTables"`
}

func (h *Handlers) DBInit(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.InitDB(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, TablesResponse{Status: "good", CountTables: count}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.TablesService.Health(r.Context()); err != nil {
		log.Printf("health check failed: %v", err)
		WriteError(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]string{"Hello": "World"}, http.StatusOK)
}
