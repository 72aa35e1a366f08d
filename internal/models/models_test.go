package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTimerStateConstants(t *testing.T) {
	if StateActive != "active" {
		t.Fatalf("StateActive = %q", StateActive)
	}
	if StateInactive != "inactive" {
		t.Fatalf("StateInactive = %q", StateInactive)
	}
}

func TestTimerEntryZeroValue(t *testing.T) {
	var e TimerEntry
	if e.Active || e.Total != 0 || !e.ActiveSince.IsZero() {
		t.Fatalf("expected inactive zero entry, got %+v", e)
	}
	if e.State() != StateInactive {
		t.Fatalf("State() = %q, want inactive", e.State())
	}
}

func TestTimerEntryJSONShape(t *testing.T) {
	since := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	e := TimerEntry{ID: "abc", Name: "Work", Active: true, Total: 90 * time.Second, ActiveSince: since}
	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	got := string(raw)
	for _, want := range []string{`"name":"Work"`, `"active":true`, `"total":"1m30s"`, `"active_since":"2024-03-01T09:30:00Z"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %s in %s", want, got)
		}
	}
}

func TestTimerEntryInactiveOmitsActiveSince(t *testing.T) {
	e := TimerEntry{Name: "Idle", ActiveSince: time.Now()}
	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "active_since") {
		t.Fatalf("inactive entry should not carry active_since: %s", raw)
	}
}

func TestTimerEntryUnmarshal(t *testing.T) {
	var e TimerEntry
	if err := json.Unmarshal([]byte(`{"name":"Ü","active":false,"total":"1h1m1.5s"}`), &e); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := time.Hour + time.Minute + 1500*time.Millisecond
	if e.Name != "Ü" || e.Active || e.Total != want {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestTimerEntryUnmarshalRejectsMalformed(t *testing.T) {
	cases := []string{
		`{"name":"x","total":"soon"}`,
		`{"name":"x","total":"-5s"}`,
		`{"name":"x","active":false,"total":12}`,
		`{"name":"x","active":false,"total":""}`,
		`null`,
		`{}`,
		`{"active":false,"total":"1s"}`,
		`{"name":"x","total":"1s"}`,
		`{"name":"x","active":false}`,
		`{"name":"x","active":true,"total":"1m"}`,
	}
	for _, raw := range cases {
		var e TimerEntry
		err := json.Unmarshal([]byte(raw), &e)
		if err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}

func TestTimerEntryUnmarshalMalformedSentinel(t *testing.T) {
	var e TimerEntry
	err := json.Unmarshal([]byte(`{"name":"x","active":true,"total":"1m"}`), &e)
	if !errors.Is(err, ErrMalformedEntry) {
		t.Fatalf("expected ErrMalformedEntry, got %v", err)
	}
}

func TestTimerEntryUnmarshalActiveKeepsSince(t *testing.T) {
	var e TimerEntry
	raw := `{"name":"Run","active":true,"total":"0s","active_since":"2024-03-01T09:30:00Z"}`
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	if !e.Active || !e.ActiveSince.Equal(want) {
		t.Fatalf("unexpected entry %+v", e)
	}
}
