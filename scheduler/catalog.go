package scheduler

import (
	"fmt"
	"sort"
	"time"
)

// Catalog is the fixed ordered list of bookable time labels for a clinic
// day. Comparison between slots is by position in this list, never by
// string comparison.
var Catalog = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
}

const slotLayout = "03:04 PM"

// SlotIndex returns the position of a label in the catalog, or -1 when the
// label is not a catalog slot.
func SlotIndex(label string) int {
	for i, s := range Catalog {
		if s == label {
			return i
		}
	}
	return -1
}

// IsValidSlot reports whether the label is part of the catalog.
func IsValidSlot(label string) bool {
	return SlotIndex(label) >= 0
}

// NormalizeSlot maps a free time value in 24h "HH:MM" form onto its catalog
// label. Labels already in catalog form pass through unchanged.
func NormalizeSlot(value string) (string, error) {
	if IsValidSlot(value) {
		return value, nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return "", fmt.Errorf("invalid time value %q", value)
	}
	label := t.Format(slotLayout)
	if !IsValidSlot(label) {
		return "", fmt.Errorf("time %q is not a bookable slot", value)
	}
	return label, nil
}

// SlotTime combines a calendar date with a slot label into a wall-clock
// time in the date's location.
func SlotTime(date time.Time, label string) (time.Time, error) {
	t, err := time.Parse(slotLayout, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot label %q", label)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// SortBySlotOrder orders labels by their catalog position in place. Labels
// not present in the catalog sink to the end.
func SortBySlotOrder(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		a, b := SlotIndex(labels[i]), SlotIndex(labels[j])
		if a < 0 {
			return false
		}
		if b < 0 {
			return true
		}
		return a < b
	})
}

// NormalizeDate zeroes the time-of-day component so two timestamps on the
// same calendar day compare equal.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return NormalizeDate(a).Equal(NormalizeDate(b))
}
