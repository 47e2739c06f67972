// Package config provides configuration loading, merging, and validation
// facilities for the service.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, later sources fill zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
