package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		input   string
		ok      bool
		minutes int
	}{
		{"00:00", true, 0},
		{"09:05", true, 545},
		{"13:30", true, 810},
		{"23:59", true, 1439},
		{"24:00", false, 0},
		{"9:05", false, 0},
		{"09:60", false, 0},
		{"0905", false, 0},
		{"", false, 0},
	}
	for _, c := range cases {
		got, ok := ParseClockTime(c.input)
		if ok != c.ok {
			t.Errorf("ParseClockTime(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got.MinutesSinceMidnight() != c.minutes {
			t.Errorf("ParseClockTime(%q) minutes = %d, want %d", c.input, got.MinutesSinceMidnight(), c.minutes)
		}
	}
}

func TestIsValidRollNo(t *testing.T) {
	valid := []string{"CS21B042", "21CSE/104", "EE-2023-7"}
	invalid := []string{"", "ab", "roll no with spaces", "x"}
	for _, s := range valid {
		if !IsValidRollNo(s) {
			t.Errorf("IsValidRollNo(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidRollNo(s) {
			t.Errorf("IsValidRollNo(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"CSE-0042", "EE-0001", "MECH-1234"}
	invalid := []string{"cse-0042", "CSE0042", "CSE-42", "C-0042", ""}
	for _, s := range valid {
		if !IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}
