// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/athena-accounts/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 15 * time.Second
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAccountsClient struct {
	client *resty.Client
}

func NewHTTPAccountsClient(cfg HTTPClientConfig) AccountsClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpAccountsClient{client: cli}
}

func (h *httpAccountsClient) ListAccounts(ctx context.Context, filter models.AccountFilter) (models.Page[models.AccountView], error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(filterQuery(filter)).
		Get("/api/accounts")
	if err != nil {
		return models.Page[models.AccountView]{}, fmt.Errorf("list accounts request: %w", err)
	}

	var page models.Page[models.AccountView]
	if err = decodeResponse(resp, &page); err != nil {
		return models.Page[models.AccountView]{}, fmt.Errorf("list accounts: %w", err)
	}
	return page, nil
}

func (h *httpAccountsClient) GetAccount(ctx context.Context, id string) (models.AccountView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/api/accounts/{id}")
	if err != nil {
		return models.AccountView{}, fmt.Errorf("get account request: %w", err)
	}

	var view models.AccountView
	if err = decodeResponse(resp, &view); err != nil {
		return models.AccountView{}, fmt.Errorf("get account: %w", err)
	}
	return view, nil
}

func (h *httpAccountsClient) GetAccountProfileRecords(ctx context.Context, id string) ([]models.ProfileRecordView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/api/accounts/{id}/profile-records")
	if err != nil {
		return nil, fmt.Errorf("get profile records request: %w", err)
	}

	var records []models.ProfileRecordView
	if err = decodeResponse(resp, &records); err != nil {
		return nil, fmt.Errorf("get profile records: %w", err)
	}
	return records, nil
}

func (h *httpAccountsClient) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.AccountView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/accounts")
	if err != nil {
		return models.AccountView{}, fmt.Errorf("create account request: %w", err)
	}

	var view models.AccountView
	if err = decodeResponse(resp, &view); err != nil {
		return models.AccountView{}, fmt.Errorf("create account: %w", err)
	}
	return view, nil
}

func (h *httpAccountsClient) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.AccountView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(req).
		Patch("/api/accounts/{id}")
	if err != nil {
		return models.AccountView{}, fmt.Errorf("update account request: %w", err)
	}

	var view models.AccountView
	if err = decodeResponse(resp, &view); err != nil {
		return models.AccountView{}, fmt.Errorf("update account: %w", err)
	}
	return view, nil
}

func (h *httpAccountsClient) SoftDeleteAccount(ctx context.Context, id string) (models.DeleteResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/accounts/{id}")
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete account request: %w", err)
	}

	var result models.DeleteResult
	if err = decodeResponse(resp, &result); err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete account: %w", err)
	}
	return result, nil
}

func (h *httpAccountsClient) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func decodeResponse(resp *resty.Response, dst any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// filterQuery renders the non-zero filter fields as query parameters named
// the way the server parses them.
func filterQuery(filter models.AccountFilter) map[string]string {
	params := make(map[string]string)

	if filter.Search != "" {
		params["search"] = filter.Search
	}
	if filter.Role != nil {
		params["role"] = string(*filter.Role)
	}
	if filter.IsActive != nil {
		params["isActive"] = strconv.FormatBool(*filter.IsActive)
	}
	if filter.Page != 0 {
		params["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Limit != 0 {
		params["limit"] = strconv.Itoa(filter.Limit)
	}
	if filter.SortBy != "" {
		params["sortBy"] = string(filter.SortBy)
	}
	if filter.SortOrder != "" {
		params["sortOrder"] = string(filter.SortOrder)
	}

	return params
}
