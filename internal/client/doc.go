// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the terminal UI to an account backend.
//
// Without an adapter address the client opens the SQLite store itself and
// calls the services in process. With one it talks to a remote server
// through the HTTP adapter.
package client
