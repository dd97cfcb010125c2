// Package server serves fuzzy inference models over HTTP: a version
// endpoint, per-model descriptions, and crisp prediction.
package server

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/libp2p/go-reuseport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go.uber.org/zap"

	"example.com/fuzzy-infer/base/metrics"

	"example.com/fuzzy-infer/core/defuzz"
	"example.com/fuzzy-infer/core/expr"
	"example.com/fuzzy-infer/core/model"

	"example.com/fuzzy-infer/net/fisapi"
)

const maxRequestLen = 1 << 20

// A ServedModel pairs a model with the target domain its crisp output
// is computed over.
type ServedModel struct {
	Model  *model.Model
	Domain defuzz.Domain
}

type serverMetrics struct {
	reqsAccepted prometheus.Counter
	reqsServed   prometheus.Counter
	reqsFailed   prometheus.Counter
	evals        prometheus.Counter
	evalsNaN     prometheus.Counter
	evalDuration prometheus.Histogram
}

var (
	mtrcsMu sync.Mutex
	mtrcs   *serverMetrics
)

func newServerMetrics() *serverMetrics {
	mtrcsMu.Lock()
	defer mtrcsMu.Unlock()
	if mtrcs != nil {
		return mtrcs
	}
	mtrcs = &serverMetrics{
		reqsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.ServerReqsAcceptedN,
			Help: metrics.ServerReqsAcceptedH,
		}),
		reqsServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.ServerReqsServedN,
			Help: metrics.ServerReqsServedH,
		}),
		reqsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.ServerReqsFailedN,
			Help: metrics.ServerReqsFailedH,
		}),
		evals: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.ServerEvalsN,
			Help: metrics.ServerEvalsH,
		}),
		evalsNaN: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.ServerEvalsNaNN,
			Help: metrics.ServerEvalsNaNH,
		}),
		evalDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    metrics.ServerEvalDurationN,
			Help:    metrics.ServerEvalDurationH,
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}
	return mtrcs
}

func writeJSON(log *zap.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Info("failed to write response", zap.Error(err))
	}
}

func writeError(log *zap.Logger, mtrcs *serverMetrics, w http.ResponseWriter,
	status int, msg string) {
	mtrcs.reqsFailed.Inc()
	writeJSON(log, w, status, fisapi.ErrorResponse{Error: msg})
}

func modelInfo(sm ServedModel) fisapi.ModelInfo {
	return fisapi.ModelInfo{
		Name:      sm.Model.Name,
		Inputs:    sm.Model.Inputs,
		DomainMin: sm.Domain.Min,
		DomainMax: sm.Domain.Max,
		Steps:     sm.Domain.Steps,
		Expr:      expr.String(sm.Model.Expr),
	}
}

func handleVersion(log *zap.Logger, mtrcs *serverMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mtrcs.reqsAccepted.Inc()
		if r.Method != http.MethodGet {
			writeError(log, mtrcs, w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(log, w, http.StatusOK, fisapi.VersionResponse{Version: fisapi.Version})
		mtrcs.reqsServed.Inc()
	}
}

func handleInfo(log *zap.Logger, mtrcs *serverMetrics, models map[string]ServedModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mtrcs.reqsAccepted.Inc()
		if r.Method != http.MethodGet {
			writeError(log, mtrcs, w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/api/info/")
		sm, ok := models[name]
		if !ok {
			writeError(log, mtrcs, w, http.StatusNotFound, "unknown model")
			return
		}
		writeJSON(log, w, http.StatusOK, modelInfo(sm))
		mtrcs.reqsServed.Inc()
	}
}

func handlePredict(log *zap.Logger, mtrcs *serverMetrics, models map[string]ServedModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mtrcs.reqsAccepted.Inc()
		if r.Method != http.MethodPost {
			writeError(log, mtrcs, w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/api/predict/")
		sm, ok := models[name]
		if !ok {
			writeError(log, mtrcs, w, http.StatusNotFound, "unknown model")
			return
		}

		var req fisapi.PredictRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestLen))
		dec.DisallowUnknownFields()
		err := dec.Decode(&req)
		if err != nil {
			log.Info("failed to decode request", zap.String("model", name), zap.Error(err))
			writeError(log, mtrcs, w, http.StatusBadRequest, "malformed request")
			return
		}

		inputs, err := fisapi.OrderInputs(sm.Model.Inputs, req.Inputs)
		if err != nil {
			log.Info("failed to order inputs",
				zap.String("model", name),
				zap.Object("request", fisapi.PredictRequestMarshaler{Req: &req}),
				zap.Error(err),
			)
			writeError(log, mtrcs, w, http.StatusBadRequest, err.Error())
			return
		}

		t0 := time.Now()
		crisp := sm.Model.EvaluateCrisp(sm.Domain.Min, sm.Domain.Max, sm.Domain.Steps, inputs)
		mtrcs.evalDuration.Observe(time.Since(t0).Seconds())
		mtrcs.evals.Inc()

		if math.IsNaN(crisp) {
			// Zero total membership: the rule base matched nowhere in
			// the domain.
			mtrcs.evalsNaN.Inc()
			writeError(log, mtrcs, w, http.StatusUnprocessableEntity,
				"membership is zero everywhere in the domain")
			return
		}

		writeJSON(log, w, http.StatusOK, fisapi.PredictResponse{Crisp: crisp})
		mtrcs.reqsServed.Inc()
	}
}

// NewMux builds the API routing for the given models.
func NewMux(log *zap.Logger, models map[string]ServedModel) *http.ServeMux {
	mtrcs := newServerMetrics()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/", handleVersion(log, mtrcs))
	mux.HandleFunc("/api/info/", handleInfo(log, mtrcs, models))
	mux.HandleFunc("/api/predict/", handlePredict(log, mtrcs, models))
	return mux
}

// StartServer listens on localAddr and serves the models until the
// context is canceled.
func StartServer(ctx context.Context, log *zap.Logger,
	localAddr string, models map[string]ServedModel) {
	log.Info("server listening", zap.String("local address", localAddr))

	for name, sm := range models {
		info := modelInfo(sm)
		log.Info("serving model",
			zap.String("name", name),
			zap.Object("model", fisapi.ModelInfoMarshaler{Info: &info}),
		)
	}

	ln, err := reuseport.Listen("tcp", localAddr)
	if err != nil {
		log.Fatal("failed to listen for connections", zap.Error(err))
	}

	s := &http.Server{
		Handler:           NewMux(log, models),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = s.Close()
	}()
	err = s.Serve(ln)
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("failed to serve connections", zap.Error(err))
	}
}
