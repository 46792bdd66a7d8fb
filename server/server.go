package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/render"
	"github.com/uyouii/glucose-insights/utils"
	"go.uber.org/zap"
)

const (
	AppTitle = "Glucose Insights"

	shutdownTimeout = 5 * time.Second
)

// Server serves both front-ends over one read-only dataset.
type Server struct {
	ds      *model.Dataset
	loadErr error
	chart   render.ChartOptions
}

// New wraps ds. loadErr is the loader's diagnostic, shown as a banner when non-nil.
func New(ds *model.Dataset, loadErr error, chart render.ChartOptions) *Server {
	if ds == nil {
		ds = model.EmptyDataset()
	}
	datasetRows.Set(float64(ds.Len()))
	if loadErr != nil {
		loadFailures.Inc()
	}
	return &Server{ds: ds, loadErr: loadErr, chart: chart}
}

func (s *Server) loadError() string {
	if s.loadErr == nil {
		return ""
	}
	return "Error loading data: " + s.loadErr.Error()
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	logger := utils.GetLogger(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("glucose insights listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
