package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/types"
)

const jsonContentType = "application/json; charset=utf-8"

type Response[T any] struct {
	Data T `json:"data"`
}

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// HandlerFunc is an http.HandlerFunc that returns an error. A *types.Error
// decides the status code, any other error is answered with 500.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func wrap(f HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *types.Error
	if !errors.As(err, &apiErr) {
		apiErr = types.NewInternalServiceError(err)
	}

	logger := log.Ctx(r.Context())
	if apiErr.StatusCode >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		logger.Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	}

	message := apiErr.Error()
	// internals are not leaked to callers
	if apiErr.ErrorCode == types.InternalServiceError {
		message = "internal service error"
	}

	writeJSON(w, apiErr.StatusCode, ErrorResponse{
		ErrorCode: apiErr.ErrorCode.String(),
		Message:   message,
	})
}

func writeData[T any](w http.ResponseWriter, data T) error {
	writeJSON(w, http.StatusOK, Response[T]{Data: data})
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// parseJSON decodes a request body in strict mode.
func parseJSON(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
