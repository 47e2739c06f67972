// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/athena-accounts/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Chi calls it when the path matches a route but the method does not. The
// response is a JSON 404, identical to an unknown path, so that callers cannot
// probe which methods a route supports.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
