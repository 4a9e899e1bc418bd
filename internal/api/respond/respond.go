// Package respond writes the API's JSON bodies: cached catalog and plan
// documents with ETags, uncached session and builder payloads, and the
// {"error":{...}} envelope.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode is the machine-readable code in an error envelope.
type ErrorCode string

// Request errors (400).
const (
	CodeInvalidBody    ErrorCode = "INVALID_BODY"
	CodeMissingSport   ErrorCode = "MISSING_SPORT"
	CodeUnknownSport   ErrorCode = "UNKNOWN_SPORT"
	CodeInvalidWeek    ErrorCode = "INVALID_WEEK"
	CodeInvalidAthlete ErrorCode = "INVALID_ATHLETE"
	CodeInvalidID      ErrorCode = "INVALID_ID"
)

// Lookup, store and server errors.
const (
	CodeNotFound      ErrorCode = "NOT_FOUND"      // 404
	CodeStoreDisabled ErrorCode = "STORE_DISABLED" // 503, PLAN_STORE=none
	CodeStoreError    ErrorCode = "STORE_ERROR"    // 500
	CodeRateLimited   ErrorCode = "RATE_LIMITED"   // 429
	CodeInternal      ErrorCode = "INTERNAL"       // 500
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
		Detail  string    `json:"detail,omitempty"`
	} `json:"error"`
}

// WriteJSON writes a cached document (sports, phases, a stored plan) with its
// ETag. cacheHit sets X-Cache.
func WriteJSON(w http.ResponseWriter, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept-Encoding")
	if cacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	maxAge := int(ttl.Seconds())
	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, maxAge/2))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// WriteNotModified answers a matching If-None-Match.
func WriteNotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// WriteError sends the error envelope.
func WriteError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	WriteErrorDetail(w, status, code, message, "")
}

// WriteErrorDetail sends the error envelope with a detail string, e.g. the
// athlete field that failed validation.
func WriteErrorDetail(w http.ResponseWriter, status int, code ErrorCode, message, detail string) {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Detail = detail
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// WriteJSONObject encodes v without cache headers: health, API info, plan
// lists and created plans.
func WriteJSONObject(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteNoStore is for randomized bodies (sessions, builder view, sprint
// projection) that must differ on every request.
func WriteNoStore(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Cache-Control", "no-store")
	WriteJSONObject(w, http.StatusOK, v)
}
