package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/domain"
)

// getPathID extracts a positive int64 ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// parsePageRequest reads pageNo, pageSize, sortBy and sortDir from the query
// string, falling back to the configured defaults. Range and whitelist checks
// are left to the service.
func parsePageRequest(r *http.Request, defaults config.PaginationConfig) (domain.PageRequest, error) {
	q := r.URL.Query()

	req := domain.PageRequest{
		PageNo:   0,
		PageSize: defaults.DefaultPageSize,
		SortBy:   defaults.DefaultSortBy,
		SortDir:  domain.ParseSortDirection(defaults.DefaultSortDir),
	}

	if v := q.Get("pageNo"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, domain.NewValidationError("pageNo", "must be an integer", domain.ErrInvalidPage)
		}
		req.PageNo = n
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, domain.NewValidationError("pageSize", "must be an integer", domain.ErrInvalidPage)
		}
		req.PageSize = n
	}
	if v := q.Get("sortBy"); v != "" {
		req.SortBy = v
	}
	if v := q.Get("sortDir"); v != "" {
		req.SortDir = domain.ParseSortDirection(v)
	}

	return req, nil
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure it
// writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := shared.DecodeJSON(w, r, dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}
