// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the accounts API.
//
// Each subcommand maps to one API operation and prints the server answer as
// indented JSON.
package client
