// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// [NewRuntime] wires the parameter codec, the local session, the remote
// Attendance API and the service layer from a [config.ClientConfig]; both
// the terminal UI and attendancectl start from it. [App] runs the
// interactive lifecycle: restore or log in, dashboard with background
// workers, and back to login after logout.
package client
