package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
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
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	body := map[string]string{"error": p.ErrCode, "message": p.Err.Error()}
	if field := apperrors.GetField(p.Err); field != "" {
		body["field"] = field
	}
	WriteJSON(w, p.Code, body)
}

// WriteServiceError translates a service-layer error into an HTTP response
// using the application error taxonomy. Unclassified errors become 500s.
func WriteServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domaincart.ErrNegativeQuantity) {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_quantity", Err: err})
		return
	}

	code := apperrors.GetCode(err)
	status, ok := statusByCode[code]
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal", Err: err})
		return
	}
	WriteError(w, ErrorParams{Code: status, ErrCode: string(code), Err: err})
}

// statusByCode maps application error codes to HTTP statuses. Unavailable is
// a 502 because it indicates the backend, not this service, failed.
var statusByCode = map[apperrors.ErrorCode]int{ //nolint:gochecknoglobals // read-only lookup table
	apperrors.ErrCodeNotFound:      http.StatusNotFound,
	apperrors.ErrCodeNotRegistered: http.StatusForbidden,
	apperrors.ErrCodeUnauthorized:  http.StatusUnauthorized,
	apperrors.ErrCodeValidation:    http.StatusBadRequest,
	apperrors.ErrCodeConflict:      http.StatusConflict,
	apperrors.ErrCodeUnavailable:   http.StatusBadGateway,
	apperrors.ErrCodeInternal:      http.StatusInternalServerError,
}
