// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line application runtime.
//
// It wires the upload service to the configured resume and job, runs one
// upload (or a ping) and reports the outcome: the status line and the body
// go to the output writer, diagnostics go to the logger.
package client
