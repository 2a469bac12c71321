package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"task-tracker/pkg/datemath"
)

type recordingRunner struct {
	got time.Time
}

func (r *recordingRunner) RolloverOpenTasks(ctx context.Context, today time.Time) (int, error) {
	r.got = today
	return 3, nil
}

func TestRolloverOnto(t *testing.T) {
	dates, err := datemath.NewParser("Europe/Moscow")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	dates = dates.WithClock(func() time.Time {
		return time.Date(2024, 1, 2, 22, 0, 0, 0, time.UTC) // already Jan 3 in Moscow
	})

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"iso", "2024-02-10", datemath.Date(2024, 2, 10)},
		{"relative", "tomorrow", datemath.Date(2024, 1, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recordingRunner{}
			moved, err := rolloverOnto(context.Background(), r, dates, tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if moved != 3 {
				t.Errorf("expected 3 moved, got %d", moved)
			}
			if !r.got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, r.got)
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		if _, err := rolloverOnto(context.Background(), &recordingRunner{}, dates, "someday"); err == nil {
			t.Error("expected error for unparsable date")
		}
	})
}

func TestRolloverSummary(t *testing.T) {
	tests := []struct {
		name     string
		moved    int
		ttl      time.Duration
		wantNote bool
	}{
		{"moved with cache", 2, 10 * time.Minute, true},
		{"nothing moved", 0, 10 * time.Minute, false},
		{"default ttl", 2, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rolloverSummary(tt.moved, tt.ttl)
			if !strings.HasPrefix(got, "moved ") {
				t.Errorf("unexpected summary %q", got)
			}
			if hasNote := strings.Contains(got, "cached lists for up to 10m0s"); hasNote != tt.wantNote {
				t.Errorf("summary %q: note present = %v, want %v", got, hasNote, tt.wantNote)
			}
		})
	}

	if !strings.Contains(rolloverCmd.Long, "cache.ttl") {
		t.Error("rollover help should explain the API server list cache")
	}
}

func TestRootRegistersCommands(t *testing.T) {
	want := map[string]bool{"migrate": false, "rollover": false, "token": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
