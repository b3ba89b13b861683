package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/bookshelf/internal/errs"
)

/* envelope is the body of every API response.
 * Successful responses carry message/data/changes, failures only error.
 */
type envelope struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Changes *int64 `json:"changes,omitempty"`
	Error   string `json:"error,omitempty"`
}

const internalMessage = "internal server error"

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Data: data})
}

func writeChanges(w http.ResponseWriter, message string, changes int64) {
	writeJSON(w, http.StatusOK, envelope{Message: message, Changes: &changes})
}

// writeError maps err onto its status code; unknown errors hide their message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.CodeOf(err)
	status := code.HTTPStatus()

	message := err.Error()
	if code == errs.CodeInternal {
		message = internalMessage
	}

	if status >= http.StatusInternalServerError {
		cause := err
		var appErr *errs.Error
		if errors.As(err, &appErr) && appErr.Err != nil {
			cause = appErr.Err
		}
		oplog := httplog.LogEntry(r.Context())
		oplog.Error().Err(cause).Str("code", string(code)).Msg(message)
	}

	writeJSON(w, status, envelope{Error: message})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.ValidationWrap(err, "request body is required")
		}
		return errs.ValidationWrap(err, "invalid JSON body")
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.ValidationWrap(err, fmt.Sprintf("%s must be an integer", name))
	}
	return id, nil
}
