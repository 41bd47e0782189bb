package models

import (
	"testing"
)

func TestActiveStatuses(t *testing.T) {
	active := ActiveStatuses()
	for _, s := range []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusPending} {
		found := false
		for _, a := range active {
			if a == s {
				found = true
			}
		}
		if !found {
			t.Errorf("%s should occupy a slot", s)
		}
	}
	for _, a := range active {
		if a == StatusCancelled || a == StatusCompleted {
			t.Errorf("%s should not occupy a slot", a)
		}
	}
}

func TestConflictStatuses_OnlyScheduledAndConfirmedBlock(t *testing.T) {
	blocking := ConflictStatuses()
	if len(blocking) != 2 {
		t.Fatalf("expected exactly 2 blocking statuses, got %v", blocking)
	}
	for _, s := range []AppointmentStatus{StatusScheduled, StatusConfirmed} {
		found := false
		for _, b := range blocking {
			if b == s {
				found = true
			}
		}
		if !found {
			t.Errorf("%s should block a new booking", s)
		}
	}
	for _, b := range blocking {
		if b == StatusPending || b == StatusCancelled || b == StatusCompleted {
			t.Errorf("%s must not block a new booking", b)
		}
	}
}

func TestAppointmentIsActive(t *testing.T) {
	cases := map[AppointmentStatus]bool{
		StatusScheduled: true,
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: false,
		StatusCompleted: false,
	}
	for status, want := range cases {
		a := Appointment{Status: status}
		if got := a.IsActive(); got != want {
			t.Errorf("IsActive(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestUpdateStatus_RejectsInvalidTransitions(t *testing.T) {
	// Invalid transitions fail before any persistence happens, so no DB is
	// needed here.
	cases := []struct {
		from, to AppointmentStatus
	}{
		{StatusScheduled, StatusCompleted},
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusScheduled},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusScheduled},
	}
	for _, tc := range cases {
		a := Appointment{Status: tc.from}
		if err := a.UpdateStatus(nil, tc.to); err == nil {
			t.Errorf("transition %s -> %s should be rejected", tc.from, tc.to)
		}
		if a.Status != tc.from {
			t.Errorf("rejected transition must not change status, got %s", a.Status)
		}
	}
}

func TestStringListContains(t *testing.T) {
	prefs := StringList{"email", "sms"}
	if !prefs.Contains("email") || !prefs.Contains("sms") {
		t.Error("expected both entries present")
	}
	if prefs.Contains("push") {
		t.Error("push is not in the list")
	}
	var empty StringList
	if empty.Contains("email") {
		t.Error("empty list contains nothing")
	}
}

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["email","sms"]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Contains("sms") {
		t.Errorf("scan lost entries: %v", l)
	}

	var fromString StringList
	if err := fromString.Scan(`["email"]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fromString.Contains("email") {
		t.Errorf("scan from string lost entries: %v", fromString)
	}

	var fromNil StringList
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("nil scan should be a no-op: %v", err)
	}

	var bad StringList
	if err := bad.Scan(42); err == nil {
		t.Error("unsupported type should fail")
	}
}
