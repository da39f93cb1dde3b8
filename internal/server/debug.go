package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"eventchance/internal/domain"
	"eventchance/pkg/api"
)

// SwitchLister читает переключатели карты
type SwitchLister interface {
	ListSwitches(ctx context.Context, mapID int) ([]domain.SwitchState, error)
}

// DebugHandler предоставляет доступ к результату разрешения секций
type DebugHandler struct {
	Plans    PlanSource
	Switches SwitchLister
}

func NewDebugHandler(plans PlanSource, switches SwitchLister) *DebugHandler {
	return &DebugHandler{Plans: plans, Switches: switches}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/sections", h.handleSections)
	mux.HandleFunc("GET /debug/switches", h.handleSwitches)
}

// /debug/sections - секции и подавления последней загрузки
func (h *DebugHandler) handleSections(w http.ResponseWriter, r *http.Request) {
	setDebugHeaders(w)

	if h.Plans == nil {
		writeError(w, http.StatusNotFound, errors.New("section resolver is not registered"))
		return
	}
	plan := h.Plans.LastPlan()
	if plan == nil {
		writeError(w, http.StatusNotFound, errors.New("no map has been resolved yet"))
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// /debug/switches?map=1 - персистентные переключатели карты
func (h *DebugHandler) handleSwitches(w http.ResponseWriter, r *http.Request) {
	setDebugHeaders(w)

	mapID, err := strconv.Atoi(r.URL.Query().Get("map"))
	if err != nil || mapID <= 0 {
		writeError(w, http.StatusBadRequest, errors.New("query parameter map must be a positive integer"))
		return
	}
	if h.Switches == nil {
		writeError(w, http.StatusNotFound, errors.New("switch store is not configured"))
		return
	}

	states, err := h.Switches.ListSwitches(r.Context(), mapID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	// Пустой список отдаем как [], а не null
	views := make([]api.SwitchView, 0, len(states))
	for _, st := range states {
		views = append(views, api.SwitchView{
			MapID:    st.MapID,
			ObjectID: st.ObjectID,
			Slot:     string(st.Slot),
			Value:    st.Value,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
func setDebugHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
