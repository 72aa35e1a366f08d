package timer

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"hour minute second", 3661 * time.Second, "01:01:01"},
		{"truncates fraction", 59*time.Second + 999*time.Millisecond, "00:00:59"},
		{"past a day", 25 * time.Hour, "25:00:00"},
		{"three digit hours", 100*time.Hour + 5*time.Second, "100:00:05"},
		{"negative", -time.Minute, "00:00:00"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.in); got != tc.want {
				t.Fatalf("Format(%s) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
