// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a              server address in format [host]:[port]
//	-d              database DSN
//	-c / -config    json file path with configs
//	-l              log level
//	-cache-address  redis address in format [host]:[port]
//	-cache-ttl      account view cache TTL (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("athena-accounts", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath, logLevel, cacheAddress string
	var cacheTTL, requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "l", "", "Log level")
	fs.StringVar(&cacheAddress, "cache-address", "", "Redis address host:port")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Account view cache TTL (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				Address: cacheAddress,
				TTL:     cacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
