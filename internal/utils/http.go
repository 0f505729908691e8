package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/work-diary/models"
)

// maxRequestBody caps JSON request bodies. Entry content is plain text, so a
// megabyte is far above any real day.
const maxRequestBody = 1 << 20

var errTrailingJSON = errors.New("request body holds more than one JSON value")

// ReadJSON decodes exactly one JSON value from the request body into dst.
func ReadJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if dec.More() {
		return errTrailingJSON
	}
	return nil
}

// WriteJSON answers with status and data encoded as JSON. When data cannot be
// encoded the client gets a bare 500 instead.
func WriteJSON(w http.ResponseWriter, data any, status int) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("encode response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// WriteError answers with status and {"message": msg}.
func WriteError(w http.ResponseWriter, msg string, status int) {
	_ = WriteJSON(w, models.ErrorResponse{Message: msg}, status)
}
