package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/garnizeh/recruitd/internal/recruit"
	"github.com/garnizeh/recruitd/internal/validate"
	"github.com/garnizeh/recruitd/pkg/models"
	"github.com/garnizeh/recruitd/pkg/repository"
)

type ApplicationsHandler struct {
	svc     *recruit.Service
	schemas *requestSchemas
}

func NewApplicationsHandler(svc *recruit.Service, schemas *requestSchemas) *ApplicationsHandler {
	return &ApplicationsHandler{svc: svc, schemas: schemas}
}

type registerRequest struct {
	CompetenceID int64  `json:"competence_id"`
	YearsOfExp   int64  `json:"years_of_experience"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
}

// Register files a new application for the authenticated applicant.
func (h *ApplicationsHandler) Register(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)
	if id == nil {
		http.Error(w, "Missing identity", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := checkBody(r.Context(), h.schemas.register, body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req registerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := validate.Positive(req.CompetenceID); err != nil {
		http.Error(w, "Invalid competence id", http.StatusBadRequest)
		return
	}
	if err := validate.NonNegative(req.YearsOfExp); err != nil {
		http.Error(w, "Invalid years of experience", http.StatusBadRequest)
		return
	}
	if err := validate.DateRange(req.FromDate, req.ToDate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.RegisterApplication(r.Context(), id.Username, req.CompetenceID, req.YearsOfExp, req.FromDate, req.ToDate)
	if err != nil {
		serviceUnavailable(w)
		return
	}

	status := http.StatusCreated
	if result.Code != recruit.CodeOK {
		status = http.StatusOK
	}
	writeJSON(w, result, status)
}

// List serves the recruiter's filtered, paginated application listing.
// Query parameters: name, competence_id, from, to (each optional) and page
// (1-based; absent means all rows).
func (h *ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	f, page, ok := parseListQuery(w, r)
	if !ok {
		return
	}

	result, err := h.svc.ListApplications(r.Context(), f, page)
	if err != nil {
		serviceUnavailable(w)
		return
	}
	writeJSON(w, result, http.StatusOK)
}

type pageCountResponse struct {
	Pages int64 `json:"pages"`
}

// PageCount serves ceil(matched rows / 25) for the same filter vocabulary as List.
func (h *ApplicationsHandler) PageCount(w http.ResponseWriter, r *http.Request) {
	f, _, ok := parseListQuery(w, r)
	if !ok {
		return
	}

	pages, err := h.svc.PageCount(r.Context(), f)
	if err != nil {
		serviceUnavailable(w)
		return
	}
	writeJSON(w, pageCountResponse{Pages: pages}, http.StatusOK)
}

// Detail serves the joined single-application view. Unknown ids produce a
// placeholder payload tagged INVALID_ID with status 200.
func (h *ApplicationsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	appID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || appID <= 0 {
		http.Error(w, "Invalid application id", http.StatusBadRequest)
		return
	}

	result, err := h.svc.GetApplication(r.Context(), appID)
	if err != nil {
		serviceUnavailable(w)
		return
	}
	writeJSON(w, result, http.StatusOK)
}

type decisionRequest struct {
	Decision string `json:"decision"`
}

// Decide applies the one-time accept/reject transition as the authenticated
// recruiter.
func (h *ApplicationsHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)
	if id == nil {
		http.Error(w, "Missing identity", http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	appID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || appID <= 0 {
		http.Error(w, "Invalid application id", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := checkBody(r.Context(), h.schemas.decision, body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req decisionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.svc.SubmitDecision(r.Context(), id.Username, appID, models.Decision(req.Decision))
	if err != nil {
		serviceUnavailable(w)
		return
	}
	writeJSON(w, result, http.StatusOK)
}

// parseListQuery builds the optional filter and page from query parameters.
// On a malformed parameter it writes a 400 and returns ok=false.
func parseListQuery(w http.ResponseWriter, r *http.Request) (repository.Filter, repository.Opt[int], bool) {
	q := r.URL.Query()
	var f repository.Filter
	page := repository.None[int]()

	if name := q.Get("name"); name != "" {
		if err := validate.Name(name); err != nil {
			http.Error(w, "Invalid name filter", http.StatusBadRequest)
			return f, page, false
		}
		f.Name = repository.Some(name)
	}
	if c := q.Get("competence_id"); c != "" {
		cid, err := strconv.ParseInt(c, 10, 64)
		if err != nil || cid <= 0 {
			http.Error(w, "Invalid competence filter", http.StatusBadRequest)
			return f, page, false
		}
		f.CompetenceID = repository.Some(cid)
	}
	if from := q.Get("from"); from != "" {
		if err := validate.ISODate(from); err != nil {
			http.Error(w, "Invalid from filter", http.StatusBadRequest)
			return f, page, false
		}
		f.From = repository.Some(from)
	}
	if to := q.Get("to"); to != "" {
		if err := validate.ISODate(to); err != nil {
			http.Error(w, "Invalid to filter", http.StatusBadRequest)
			return f, page, false
		}
		f.To = repository.Some(to)
	}
	if p := q.Get("page"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil || v < 1 {
			http.Error(w, "Invalid page", http.StatusBadRequest)
			return f, page, false
		}
		page = repository.Some(v)
	}
	return f, page, true
}
