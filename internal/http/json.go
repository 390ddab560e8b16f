package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	errs "github.com/meinblog/blog-api/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteError(w, ErrorParams{Code: http.StatusRequestEntityTooLarge, ErrCode: "payload_too_large", Err: errors.New("request body is too large")})
			return false
		}
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError to adhere to the ≤3 params guideline.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
	Field   string
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	body := map[string]string{"error": p.ErrCode, "message": p.Err.Error()}
	if p.Field != "" {
		body["field"] = p.Field
	}
	WriteJSON(w, p.Code, body)
}

// WriteAppError maps an application error to its HTTP status and writes the
// JSON error body. Internal details never reach the client.
func WriteAppError(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	status := statusForCode(code)

	if status == http.StatusInternalServerError {
		// Do not leak causes from unexpected failures.
		WriteError(w, ErrorParams{Code: status, ErrCode: string(errs.ErrCodeInternal), Err: errors.New("internal server error")})
		return
	}

	WriteError(w, ErrorParams{
		Code:    status,
		ErrCode: string(code),
		Err:     errors.New(errorMessage(err)),
		Field:   errs.GetField(err),
	})
}

func statusForCode(code errs.ErrorCode) int {
	switch code {
	case errs.ErrCodeValidation:
		return http.StatusBadRequest
	case errs.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case errs.ErrCodeNotFound:
		return http.StatusNotFound
	case errs.ErrCodeConflict:
		return http.StatusConflict
	case errs.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errs.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the outward-facing message, without the wrapped cause
// chain an AppError's Error() would append.
func errorMessage(err error) string {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
