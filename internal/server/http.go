package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"eventchance/internal/engine"
	"eventchance/internal/sections"
	"eventchance/internal/version"
	"eventchance/pkg/api"
	"eventchance/pkg/logger"
	"eventchance/pkg/maps"
)

// PlanSource отдает план последней загрузки карты
type PlanSource interface {
	LastPlan() *sections.Plan
}

type Server struct {
	Engine   *engine.MapService
	Plans    PlanSource
	Switches SwitchLister
	Port     string

	httpServer *http.Server
}

func New(eng *engine.MapService, plans PlanSource, switches SwitchLister, port string) *Server {
	return &Server{
		Engine:   eng,
		Plans:    plans,
		Switches: switches,
		Port:     port,
	}
}

// Handler собирает все роуты сервера
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /health", enableCORS(s.handleHealth))
	mux.HandleFunc("GET /version", enableCORS(s.handleVersion))
	mux.HandleFunc("POST /maps/{id}/transfer", enableCORS(s.handleTransfer))
	mux.HandleFunc("GET /maps/current", enableCORS(s.handleCurrent))

	debugHandler := NewDebugHandler(s.Plans, s.Switches)
	debugHandler.RegisterRoutes(mux)

	return mux
}

// Run запускает HTTP сервер и блокируется до Shutdown
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Log.Infof("Event chance server running on :%s", s.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown останавливает сервер
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Get())
}

// POST /maps/{id}/transfer - загрузить карту и сделать ее текущей
func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("map id must be an integer"))
		return
	}
	payload := api.TransferPayload{MapID: id}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	inst, err := s.Engine.Setup(r.Context(), payload.MapID)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, inst.Snapshot())
}

// GET /maps/current - снимок текущей карты
func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	snap := s.Engine.CurrentSnapshot()
	if snap == nil {
		writeError(w, http.StatusNotFound, errors.New("no map loaded"))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// statusFor переводит ошибку загрузки карты в HTTP-статус
func statusFor(err error) int {
	var cfgErr *sections.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, maps.ErrMapNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("write json response failed")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, api.ErrorResponse(err))
}
