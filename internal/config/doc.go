// Package config provides configuration loading, merging, and validation
// facilities for the client and the server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file is loaded first when present)
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] for the API server and
// [GetClientConfig] for the terminal client.
package config
