package utils

import (
	"fmt"
	"time"
)

// ParseUserTime parses a time string that can be either RFC3339 or YYYY-MM-DD format.
// For YYYY-MM-DD format, if isEndTime is true, it will set the time to end of day (23:59:59).
func ParseUserTime(timeStr string, isEndTime bool) (time.Time, error) {
	// Try RFC3339 first
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	// Try simple date format
	t, err = time.Parse("2006-01-02", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}

	// For end_time with date only, set it to end of day
	if isEndTime {
		t = t.Add(24*time.Hour - time.Second)
	}

	return t, nil
}

// ParseMonthYear parses a billing month code in YYYY-MM format and returns
// the first instant of that month in UTC.
func ParseMonthYear(code string) (time.Time, error) {
	t, err := time.Parse("2006-01", code)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month code, expected YYYY-MM, got %s", code)
	}
	return t, nil
}

// MonthYear formats a time as the YYYY-MM billing month code.
func MonthYear(t time.Time) string {
	return t.Format("2006-01")
}

var monthLabels = map[string]string{
	"01": "Jan", "02": "Feb", "03": "Mar", "04": "Apr",
	"05": "May", "06": "Jun", "07": "Jul", "08": "Aug",
	"09": "Sep", "10": "Oct", "11": "Nov", "12": "Dec",
}

// MonthLabel maps a YYYY-MM month code to its three-letter month label.
// Unknown codes are returned unchanged so chart axes stay readable.
func MonthLabel(code string) string {
	if len(code) != 7 {
		return code
	}
	if label, ok := monthLabels[code[5:]]; ok {
		return label
	}
	return code
}
