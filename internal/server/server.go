package server

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nivanov045/luhn/internal/log"
	"github.com/nivanov045/luhn/internal/services"
)

type Server struct {
	service *services.Service
}

func NewServer(service *services.Service) *Server {
	return &Server{service: service}
}

func (a *Server) Run(address string) error {
	log.Info("server started on " + address)
	return http.ListenAndServe(address, a.Handler())
}

func (a *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(log.AccessHandler)
	r.Use(middleware.Recoverer)

	r.Get("/ping", a.ping)
	r.Route("/api", func(r chi.Router) {
		r.Get("/check/{number}", a.checkNumber)
		r.Post("/check", a.checkBody)
	})

	return r
}

func (a *Server) ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Add("Content-Type", "text/plain")
	w.Write([]byte("pong"))
}

func (a *Server) checkNumber(w http.ResponseWriter, r *http.Request) {
	number, err := url.PathUnescape(chi.URLParam(r, "number"))
	if err != nil {
		log.Warn(err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	response, err := a.service.CheckJSON(r.Context(), number)
	if err != nil {
		log.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(response)
}

func (a *Server) checkBody(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error(err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	response, err := a.service.CheckRequest(r.Context(), body)
	if err != nil {
		log.Warn(err)
		if errors.Is(err, services.ErrIncorrectFormat) {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(response)
}
