package api

import (
	"net/http"

	"github.com/garnizeh/recruitd/internal/recruit"
	"github.com/garnizeh/recruitd/pkg/models"
)

type JobsHandler struct {
	svc *recruit.Service
}

func NewJobsHandler(svc *recruit.Service) *JobsHandler {
	return &JobsHandler{svc: svc}
}

type jobsResponse struct {
	Jobs []models.Job `json:"jobs"`
}

// ListJobs serves the reference job/competence set.
func (h *JobsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.ListJobs(r.Context())
	if err != nil {
		serviceUnavailable(w)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	writeJSON(w, jobsResponse{Jobs: jobs}, http.StatusOK)
}
