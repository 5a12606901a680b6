// Package config provides configuration loading, merging, and validation
// facilities for the clinic backend services.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (with optional .env file in development)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Each binary then applies
// its own startup requirements via [StructuredConfig.ValidateIssuing]
// (auth server) or [StructuredConfig.ValidateConsuming] (clinic API).
package config
