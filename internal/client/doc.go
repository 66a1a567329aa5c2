// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the blog API.
//
// Each command maps to one [adapter.ServerAdapter] call and prints the
// result as indented JSON.
package client
