// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/work-diary/internal/utils"
)

// routeNotFound serves both the router's NotFound and MethodNotAllowed
// cases with a "Cannot METHOD path" message.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Cannot "+r.Method+" "+r.URL.Path, http.StatusNotFound)
}
