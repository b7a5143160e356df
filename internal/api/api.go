// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package api serves the calculator over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avdva/numconv"
	"github.com/avdva/numconv/calc"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MaxPrecision is the largest fraction precision a request may ask for.
const MaxPrecision = 1 << 20

// Config configures a Server.
type Config struct {
	// Precision is the default fraction precision.
	Precision int
	// Verbose enables request logging if positive.
	Verbose int
}

// Server handles calculator requests.
type Server struct {
	calc *calc.Calculator
	cfg  Config
}

// New returns a server for c.
func New(c *calc.Calculator, cfg Config) *Server {
	if cfg.Precision <= 0 {
		cfg.Precision = numconv.DefaultFractionPrecision
	}
	return &Server{calc: c, cfg: cfg}
}

// Router returns the http handler.
//
//	GET /eval?expr=&radix=
//	GET /fraction?expr=&radix=&precision=
//	GET /healthz
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if s.cfg.Verbose > 0 {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/eval", s.eval)
	r.Get("/fraction", s.fraction)
	r.Get("/healthz", s.healthz)
	return r
}

func (s *Server) eval(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	radix, err := intParam(q.Get("radix"), 10)
	if err != nil {
		writeError(w, r, fmt.Sprintf("radix: %v", err))
		return
	}
	var out calc.Output
	if radix == 10 {
		out = s.calc.Expression(q.Get("expr"))
	} else if out, err = s.calc.ExpressionRadix(q.Get("expr"), radix); err != nil {
		writeError(w, r, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) fraction(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	radix, err := intParam(q.Get("radix"), 10)
	if err != nil {
		writeError(w, r, fmt.Sprintf("radix: %v", err))
		return
	}
	precision, err := intParam(q.Get("precision"), s.cfg.Precision)
	if err != nil {
		writeError(w, r, fmt.Sprintf("precision: %v", err))
		return
	}
	if precision > MaxPrecision {
		writeError(w, r, fmt.Sprintf("precision: must not exceed %d", MaxPrecision))
		return
	}
	out, err := s.calc.Fraction(q.Get("expr"), radix, precision)
	if err != nil {
		writeError(w, r, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func intParam(s string, def int) (int, error) {
	if len(s) == 0 {
		return def, nil
	}
	return strconv.Atoi(s)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, msg string) {
	slog.Debug("bad request", "path", r.URL.Path, "error", msg, "request_id", middleware.GetReqID(r.Context()))
	writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": msg})
}
