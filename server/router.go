package server

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.appHandler).Methods(http.MethodGet)
	r.HandleFunc("/dashboard", s.dashboardHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", s.stateHandler).Methods(http.MethodGet)
	api.HandleFunc("/bounds", s.boundsHandler).Methods(http.MethodGet)
	api.HandleFunc("/distribution", s.distributionHandler).Methods(http.MethodGet)

	r.HandleFunc("/chart.{format:svg|png}", s.chartHandler).Methods(http.MethodGet)
	r.HandleFunc("/distribution.{format:svg|png}", s.distributionChartHandler).Methods(http.MethodGet)

	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.Use(requestIDMiddleware)
	return r
}

// Handler is the router wrapped with access logging, panic recovery and compression.
func (s *Server) Handler() http.Handler {
	stdLog := zap.NewStdLog(zap.L().Named("http"))

	var h http.Handler = s.NewRouter()
	h = handlers.CompressHandler(h)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(stdLog), handlers.PrintRecoveryStack(true))(h)
	return handlers.LoggingHandler(stdLog.Writer(), h)
}
