package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/socialdots/site/internal/pricing"
	"github.com/socialdots/site/internal/store"
)

func writeStoreError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, errNotFound)
		return
	}
	var unknown *pricing.UnknownServiceError
	if errors.As(err, &unknown) {
		writeError(w, mapEstimateError(err))
		return
	}
	slog.Error("store operation failed", "op", op, "error", err)
	writeError(w, errInternal)
}

func (s *server) handlePublicTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := s.store.ListApprovedTestimonials(r.Context())
	if err != nil {
		writeStoreError(w, "list approved testimonials", err)
		return
	}
	writeJSON(w, http.StatusOK, testimonials)
}

func (s *server) handlePublicResources(w http.ResponseWriter, r *http.Request) {
	resources, err := s.store.ListPublishedResources(r.Context())
	if err != nil {
		writeStoreError(w, "list published resources", err)
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Dashboard(r.Context())
	if err != nil {
		writeStoreError(w, "dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *server) handleListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := s.store.ListTestimonials(r.Context())
	if err != nil {
		writeStoreError(w, "list testimonials", err)
		return
	}
	writeJSON(w, http.StatusOK, testimonials)
}

func (s *server) handleCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var in store.TestimonialInput
	if !s.decodeValid(w, r, &in) {
		return
	}

	t, err := s.store.CreateTestimonial(r.Context(), in)
	if err != nil {
		writeStoreError(w, "create testimonial", err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *server) handleUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var in store.TestimonialInput
	if !s.decodeValid(w, r, &in) {
		return
	}

	t, err := s.store.UpdateTestimonial(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeStoreError(w, "update testimonial", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *server) handleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTestimonial(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, "delete testimonial", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		writeStoreError(w, "list projects", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in store.ProjectInput
	if !s.decodeValid(w, r, &in) {
		return
	}

	p, err := s.store.CreateProject(r.Context(), in)
	if err != nil {
		writeStoreError(w, "create project", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var in store.ProjectInput
	if !s.decodeValid(w, r, &in) {
		return
	}

	p, err := s.store.UpdateProject(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeStoreError(w, "update project", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, "delete project", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := s.store.ListResources(r.Context())
	if err != nil {
		writeStoreError(w, "list resources", err)
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

func (s *server) handleCreateResource(w http.ResponseWriter, r *http.Request) {
	var in store.ResourceInput
	if !s.decodeValid(w, r, &in) {
		return
	}

	res, err := s.store.CreateResource(r.Context(), in)
	if err != nil {
		writeStoreError(w, "create resource", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (s *server) handleUpdateResource(w http.ResponseWriter, r *http.Request) {
	var in store.ResourceInput
	if !s.decodeValid(w, r, &in) {
		return
	}

	res, err := s.store.UpdateResource(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeStoreError(w, "update resource", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleDeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteResource(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, "delete resource", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
