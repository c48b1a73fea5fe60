package rest

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/domain"
)

// ListSets handles GET /api/v1/vocabulary-sets.
// Query parameters: category, level, search, sortBy, limit, offset.
func (h *LearningHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	filter, err := setFilterFromQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sets, total, err := h.svc.ListSets(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := setListResponse{Sets: make([]setResponse, 0, len(sets)), Total: total}
	for _, s := range sets {
		resp.Sets = append(resp.Sets, toSetResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetSet handles GET /api/v1/vocabulary-sets/{id}.
func (h *LearningHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	setID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid set id")
		return
	}

	set, err := h.svc.GetSet(r.Context(), setID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSetResponse(*set))
}

func setFilterFromQuery(r *http.Request) (domain.SetFilter, error) {
	q := r.URL.Query()
	var filter domain.SetFilter

	if v := q.Get("category"); v != "" {
		filter.Category = &v
	}
	if v := q.Get("level"); v != "" {
		filter.Level = &v
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	filter.SortBy = q.Get("sortBy")

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, domain.NewValidationError("limit", "must be a non-negative integer")
		}
		filter.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filter, domain.NewValidationError("offset", "must be a non-negative integer")
		}
		filter.Offset = offset
	}

	return filter, nil
}
