package httpapi

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/orgball2608/motivate-ai/pkg/errors"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "status", status, "error", err)
	} else {
		s.logger.Debug("Request rejected", "status", status, "error", err)
	}

	body := errorBody{Error: errors.GetMessage(err), Code: errors.GetCode(err)}
	if body.Code == "" {
		body = errorBody{Error: http.StatusText(status), Code: "internal"}
	}
	s.respondJSON(w, status, body)
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeWrongStep:
		return http.StatusConflict
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeAuth, errors.CodeAuthCancelled:
		return http.StatusUnauthorized
	case errors.CodeConfiguration:
		return http.StatusServiceUnavailable
	case errors.CodeGeneration, errors.CodeUpload:
		return http.StatusBadGateway
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.InvalidInput("invalid JSON body")
	}
	return nil
}
