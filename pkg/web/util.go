package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func renderStatus(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		io.WriteString(w, fmt.Sprintf("%d %s", code, http.StatusText(code))) //nolint:errcheck,gosec
	}
}

func renderNotFound(w http.ResponseWriter, r *http.Request) {
	renderStatus(http.StatusNotFound)(w, r)
}

// renderJSON writes v as a JSON response.
func renderJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", "err", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// renderError maps backend errors to HTTP status codes.
func renderError(w http.ResponseWriter, err error) {
	var code int
	switch {
	case errors.Is(err, proto.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, proto.ErrUserNotFound):
		code = http.StatusUnauthorized
	case errors.Is(err, proto.ErrTeamNotFound),
		errors.Is(err, proto.ErrMemberNotFound),
		errors.Is(err, proto.ErrFineNotFound),
		errors.Is(err, proto.ErrDefinitionNotFound),
		errors.Is(err, proto.ErrPayoutNotFound):
		code = http.StatusNotFound
	case errors.Is(err, proto.ErrInviteInvalid):
		code = http.StatusGone
	case errors.Is(err, proto.ErrLastAdmin),
		errors.Is(err, proto.ErrUserExist):
		code = http.StatusConflict
	case errors.Is(err, proto.ErrReportUnavailable):
		code = http.StatusServiceUnavailable
	default:
		code = http.StatusBadRequest
	}

	renderJSON(w, code, errorResponse{Error: err.Error()})
}

// decodeJSON reads the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close() // nolint: errcheck
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v) //nolint:wrapcheck
}
