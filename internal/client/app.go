// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/athena-accounts/internal/adapter"
	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/utils"
	"github.com/MKhiriev/athena-accounts/models"
)

type command func(ctx context.Context, args []string) (any, error)

type App struct {
	accounts adapter.AccountsClient
	out      io.Writer
	logger   *logger.Logger

	commands map[string]command
}

func NewApp(accounts adapter.AccountsClient, out io.Writer, logger *logger.Logger) *App {
	app := &App{
		accounts: accounts,
		out:      out,
		logger:   logger,
	}

	app.commands = map[string]command{
		"version": app.version,
		"list":    app.list,
		"get":     app.get,
		"records": app.records,
		"create":  app.create,
		"update":  app.update,
		"delete":  app.delete,
	}

	return app
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, expected one of: %s", ErrNoCommand, a.commandNames())
	}

	run, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q, expected one of: %s", ErrUnknownCommand, args[0], a.commandNames())
	}

	a.logger.Debug().Str("command", args[0]).Strs("args", args[1:]).Msg("running command")

	result, err := run(ctx, args[1:])
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func (a *App) commandNames() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	version, err := a.accounts.GetServerVersion(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{"version": version}, nil
}

func (a *App) list(ctx context.Context, args []string) (any, error) {
	fs := a.newFlagSet("list")
	search := fs.String("search", "", "case-insensitive login substring")
	role := fs.String("role", "", "role filter")
	active := fs.String("active", "", "is_active filter (true/false)")
	page := fs.Int("page", 0, "1-based page number")
	limit := fs.Int("limit", 0, "page size")
	sortBy := fs.String("sort-by", "", "login, role, isActive, createdAt or updatedAt")
	sortOrder := fs.String("sort-order", "", "ASC or DESC")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	filter := models.AccountFilter{
		Search:    *search,
		Page:      *page,
		Limit:     *limit,
		SortBy:    models.SortField(*sortBy),
		SortOrder: models.SortOrder(*sortOrder),
	}
	if *role != "" {
		r := models.Role(*role)
		filter.Role = &r
	}
	if *active != "" {
		isActive, err := utils.ParseBool(*active)
		if err != nil {
			return nil, fmt.Errorf("-active: %w", err)
		}
		filter.IsActive = &isActive
	}

	return a.accounts.ListAccounts(ctx, filter)
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	id, err := accountID(args)
	if err != nil {
		return nil, err
	}
	return a.accounts.GetAccount(ctx, id)
}

func (a *App) records(ctx context.Context, args []string) (any, error) {
	id, err := accountID(args)
	if err != nil {
		return nil, err
	}
	return a.accounts.GetAccountProfileRecords(ctx, id)
}

func (a *App) create(ctx context.Context, args []string) (any, error) {
	fs := a.newFlagSet("create")
	login := fs.String("login", "", "account login")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "", "account role, student when empty")
	active := fs.String("active", "", "is_active flag, true when empty")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	req := models.CreateAccountRequest{Login: *login, Password: *password}
	if *role != "" {
		r := models.Role(*role)
		req.Role = &r
	}
	if *active != "" {
		isActive, err := utils.ParseBool(*active)
		if err != nil {
			return nil, fmt.Errorf("-active: %w", err)
		}
		req.IsActive = &isActive
	}

	return a.accounts.CreateAccount(ctx, req)
}

// update sends only the flags given on the command line, so an explicit
// empty value is still applied.
func (a *App) update(ctx context.Context, args []string) (any, error) {
	id, err := accountID(args)
	if err != nil {
		return nil, err
	}

	fs := a.newFlagSet("update")
	login := fs.String("login", "", "new login")
	password := fs.String("password", "", "new password")
	role := fs.String("role", "", "new role")
	active := fs.String("active", "", "new is_active flag (true/false)")
	if err = fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	var req models.UpdateAccountRequest
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "login":
			req.Login = login
		case "password":
			req.Password = password
		case "role":
			r := models.Role(*role)
			req.Role = &r
		case "active":
			isActive, err := utils.ParseBool(*active)
			if err != nil {
				parseErr = fmt.Errorf("-active: %w", err)
				return
			}
			req.IsActive = &isActive
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return a.accounts.UpdateAccount(ctx, id, req)
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	id, err := accountID(args)
	if err != nil {
		return nil, err
	}
	return a.accounts.SoftDeleteAccount(ctx, id)
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func accountID(args []string) (string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", fmt.Errorf("%w: account id", ErrMissingArgument)
	}
	return args[0], nil
}
