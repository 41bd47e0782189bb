package scheduler

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalizeSlot_LabelPassesThrough(t *testing.T) {
	got, err := NormalizeSlot("02:30 PM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "02:30 PM" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeSlot_Accepts24HourInput(t *testing.T) {
	cases := map[string]string{
		"09:00": "09:00 AM",
		"14:30": "02:30 PM",
		"17:30": "05:30 PM",
	}
	for in, want := range cases {
		got, err := NormalizeSlot(in)
		if err != nil {
			t.Fatalf("NormalizeSlot(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("NormalizeSlot(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeSlot_RejectsOffCatalogTimes(t *testing.T) {
	for _, in := range []string{"09:15", "13:00", "08:00", "not a time"} {
		if _, err := NormalizeSlot(in); err == nil {
			t.Errorf("NormalizeSlot(%q) should fail", in)
		}
	}
}

func TestSlotTime_CombinesDateAndLabel(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := SlotTime(day, "02:30 PM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortBySlotOrder_OrdersByCatalogPositionNotLexically(t *testing.T) {
	// Lexical order would put "02:00 PM" before "09:00 AM".
	labels := []string{"02:00 PM", "09:00 AM", "12:30 PM", "10:00 AM"}
	SortBySlotOrder(labels)
	want := []string{"09:00 AM", "10:00 AM", "12:30 PM", "02:00 PM"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("got %v, want %v", labels, want)
	}
}

func TestSortBySlotOrder_UnknownLabelsSinkToEnd(t *testing.T) {
	labels := []string{"bogus", "09:30 AM", "09:00 AM"}
	SortBySlotOrder(labels)
	want := []string{"09:00 AM", "09:30 AM", "bogus"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("got %v, want %v", labels, want)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	b := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	c := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("same calendar day should match")
	}
	if SameDay(a, c) {
		t.Error("different days should not match")
	}
}
