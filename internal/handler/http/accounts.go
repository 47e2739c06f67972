// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/athena-accounts/internal/utils"
	"github.com/MKhiriev/athena-accounts/models"
	"github.com/go-chi/chi/v5"
)

// Query parameters accepted by GET /api/accounts.
const (
	querySearch    = "search"
	queryRole      = "role"
	queryIsActive  = "isActive"
	queryPage      = "page"
	queryLimit     = "limit"
	querySortBy    = "sortBy"
	querySortOrder = "sortOrder"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAccountFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.AccountService.ListAccounts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.AccountService.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) getAccountProfileRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.AccountService.GetAccountProfileRecords(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.AccountService.CreateAccount(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/accounts/"+view.ID)
	_, _ = utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAccountRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.AccountService.UpdateAccount(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.AccountService.SoftDeleteAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// parseAccountFilter overlays the query parameters on the listing defaults.
// Only syntax is checked here; ranges and enums are left to the validation
// layer.
func parseAccountFilter(query url.Values) (models.AccountFilter, error) {
	filter := models.NewAccountFilter()
	filter.Search = query.Get(querySearch)

	if role := strings.TrimSpace(query.Get(queryRole)); role != "" {
		parsed := models.Role(role)
		filter.Role = &parsed
	}

	isActive, err := utils.QueryBool(query, queryIsActive)
	if err != nil {
		return models.AccountFilter{}, err
	}
	filter.IsActive = isActive

	if filter.Page, err = utils.QueryInt(query, queryPage, models.DefaultPage); err != nil {
		return models.AccountFilter{}, err
	}
	if filter.Limit, err = utils.QueryInt(query, queryLimit, models.DefaultLimit); err != nil {
		return models.AccountFilter{}, err
	}

	if sortBy := strings.TrimSpace(query.Get(querySortBy)); sortBy != "" {
		filter.SortBy = models.SortField(sortBy)
	}
	if sortOrder := strings.TrimSpace(query.Get(querySortOrder)); sortOrder != "" {
		filter.SortOrder = models.SortOrder(sortOrder).Normalized()
	}

	return filter, nil
}
