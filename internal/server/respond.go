package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	gerrors "github.com/matzehuels/graphderiv/pkg/errors"
	"github.com/matzehuels/graphderiv/pkg/observability"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "err", err)
	}
}

// writeError classifies err and writes it as {"error", "code"}.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := gerrors.FromCore(err)
	status := gerrors.HTTPStatus(e.Code)
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, string(e.Code))

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err,
			"request_id", middleware.GetReqID(r.Context()))
		s.writeJSON(w, status, errorResponse{Error: "internal error", Code: string(e.Code)})
		return
	}
	s.writeJSON(w, status, errorResponse{Error: gerrors.UserMessage(e), Code: string(e.Code)})
}

// decode reads a JSON body into v and validates it. An empty body decodes
// as {} when allowEmpty is set.
func decode(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			return gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "invalid JSON body: %v", err)
		}
	}
	return gerrors.ValidateStruct(v)
}

func cacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
}
