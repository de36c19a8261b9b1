// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv builds a [StructuredConfig] from environ using the `env` and
// `envPrefix` tags of its nested types. A nil environ reads the process
// environment.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}

// environWithDotEnv returns the process environment laid over the variables
// of the dotenv file at path. Process variables win, so a value exported in
// the shell always beats the file. The process environment itself is left
// untouched.
func environWithDotEnv(path string) (map[string]string, error) {
	fileVars, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}

	environ := make(map[string]string, len(fileVars))
	for k, v := range fileVars {
		environ[k] = v
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}

	return environ, nil
}
