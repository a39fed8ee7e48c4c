package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"campus-parking/internal/logging"
	"campus-parking/internal/monitoring"
	"campus-parking/internal/parking"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	httpServer *http.Server
	handler    *Handler
}

func NewServer(port string, registry *parking.InstrumentedRegistry, serviceName string, activeBookingsLimit int) *Server {
	handler := NewHandler(registry, serviceName, activeBookingsLimit)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(handler, registry),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
	}
}

func NewRouter(handler *Handler, stats monitoring.StatsSource) http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware)
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(TracingMiddleware)
	r.Use(CORSMiddleware)

	r.Get("/health", handler.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(monitoring.NewRegistry(stats), promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", handler.GetStats)
		r.Get("/users", handler.ListUsers)

		r.Route("/slots", func(r chi.Router) {
			r.Get("/", handler.ListSlots)
			r.Get("/grouped", handler.GroupedSlots)
			r.Post("/reset", handler.ResetSlots)
			r.Post("/simulate", handler.SimulateParking)
			r.Get("/{id}", handler.GetSlot)
			r.Post("/{id}/book", handler.BookSlot)
			r.Put("/{id}/status", handler.UpdateSlotStatus)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", handler.ListBookings)
			r.Get("/active", handler.ListActiveBookings)
		})
	})

	return r
}

func (s *Server) Start() error {
	logging.Info(context.Background(), "starting HTTP server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info(ctx, "shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) GetAddress() string {
	return fmt.Sprintf("http://localhost%s", s.httpServer.Addr)
}
