// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the attendance clients and
// the remote API.
//
// The MsgEntry* constants are compared verbatim against the "message" field
// returned by /MarkEntry: the backend reports the outcome only through this
// text, so any change on either side must be made in both.
package app

const (
	// MsgEntryMarked is returned by /MarkEntry when today's check-in was
	// recorded.
	MsgEntryMarked = "Entry Marked Successfully!"

	// MsgEntryAlreadyMarked is returned by /MarkEntry when the employee had
	// already checked in today.
	MsgEntryAlreadyMarked = "Entry already Marked..."
)

// User-facing fallbacks used when the backend answers 2xx without a message.
const (
	MsgExitMarked         = "Exit marked successfully"
	MsgPasswordChanged    = "Password updated successfully"
	MsgEmployeeRegistered = "Employee registered successfully"
	MsgAttendanceUpdated  = "Attendance updated successfully"
	MsgLeaveApplied       = "Leave request submitted successfully"
)
