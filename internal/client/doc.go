// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the stored session, drives the sign-in and signed-in terminal
// flows, and keeps the dashboard refresh job running while the user is
// signed in.
package client
