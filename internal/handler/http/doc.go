// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the accounts service.
//
// It exposes the /api/accounts resource on a chi router. Request tracing,
// access logging, response compression and per-request timeouts are applied
// here before requests are delegated to the service layer.
package http
