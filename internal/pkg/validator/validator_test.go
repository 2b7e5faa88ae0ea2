package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "jane@co.com", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Jane@Co.COM", "jane@co.com"},
		{"  jane@co.com  ", "jane@co.com"},
		{"jane@co.com", "jane@co.com"},
	}
	for _, c := range cases {
		got := NormalizeEmail(c.input)
		if got != c.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2024-03-05", true},
		{"2024-12-31", true},
		{"2024-02-30", false},
		{"03/01/2024", false},
		{"2024-3-1", false},
		{"2024-03-05T00:00:00Z", false},
		{"", false},
	}
	for _, c := range cases {
		_, ok := IsValidDate(c.input)
		if ok != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, ok, c.want)
		}
	}

	parsed, ok := IsValidDate("2024-03-05")
	if !ok {
		t.Fatal("IsValidDate(2024-03-05) = false, want true")
	}
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Errorf("IsValidDate(2024-03-05) parsed %v, want %v", parsed, want)
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"Present", "Absent"}
	if !IsInSlice("Present", statuses) {
		t.Error("IsInSlice(Present) = false, want true")
	}
	if IsInSlice("present", statuses) {
		t.Error("IsInSlice(present) = true, want false (case-sensitive)")
	}
	if IsInSlice("Late", statuses) {
		t.Error("IsInSlice(Late) = true, want false")
	}
}
