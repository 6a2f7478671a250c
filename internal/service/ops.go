package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/api"
	"github.com/ratulalahy/med-debt-collector/internal/appstate"
	"github.com/ratulalahy/med-debt-collector/internal/metrics"
)

// Health is the body of /healthz.
type Health struct {
	Status        string `json:"status"`
	LastError     string `json:"lastError,omitempty"`
	Notifications int    `json:"notifications"`
}

// OpsServer exposes metrics, health and a read-only view of the state.
type OpsServer struct {
	server *http.Server
	logger *zap.Logger
}

func NewOpsServer(addr string, store *appstate.Store, collector *metrics.Collector, logger *zap.Logger) *OpsServer {
	return &OpsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           NewOpsRouter(store, collector),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// NewOpsRouter builds the handler. A nil collector omits /metrics.
func NewOpsRouter(store *appstate.Store, collector *metrics.Collector) http.Handler {
	r := mux.NewRouter()
	if collector != nil {
		r.Handle("/metrics", collector.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		st := store.State()
		h := Health{Status: "ok", LastError: st.Error, Notifications: len(st.Notifications)}
		if st.Error != "" {
			h.Status = "degraded"
			api.WriteJSON(w, http.StatusServiceUnavailable,
				api.Response[Health]{Data: h, Success: false, Error: st.Error})
			return
		}
		api.WriteJSON(w, http.StatusOK, api.OK(h, ""))
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/dashboard/stats", func(w http.ResponseWriter, _ *http.Request) {
		st := store.State()
		if st.DashboardStats == nil {
			api.WriteJSON(w, http.StatusServiceUnavailable,
				api.Fail[any](errors.New("dashboard not loaded"), "Dashboard stats are not available yet"))
			return
		}
		api.WriteJSON(w, http.StatusOK, api.OK(*st.DashboardStats, ""))
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/notifications", func(w http.ResponseWriter, _ *http.Request) {
		api.WriteJSON(w, http.StatusOK, api.OK(store.State().Notifications, ""))
	}).Methods(http.MethodGet)

	return r
}

// Start serves until ctx is done, then shuts down gracefully.
func (o *OpsServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		o.logger.Info("Ops server listening", zap.String("addr", o.server.Addr))
		if err := o.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
