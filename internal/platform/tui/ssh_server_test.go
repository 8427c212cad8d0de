package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSessionSeed(t *testing.T) {
	tests := []struct {
		name string
		base int64
		n    int64
		want int64
	}{
		{"clock seed stays clock", 0, 1, 0},
		{"clock seed later session", 0, 5, 0},
		{"first session uses base", 42, 1, 42},
		{"later sessions offset", 42, 3, 44},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sessionSeed(tc.base, tc.n); got != tc.want {
				t.Errorf("sessionSeed(%d, %d) = %d, want %d", tc.base, tc.n, got, tc.want)
			}
		})
	}
}

func TestSessionsGetDistinctColors(t *testing.T) {
	ctx := context.Background()

	// Each session gets its own store so every sequence starts at the origin.
	session := func(n int64) []string {
		t.Helper()
		srv := &SSHServer{store: &fakeStore{}, logger: log.New(io.Discard)}
		ctrl := srv.newController("alice", sessionSeed(7, n))
		out := make([]string, 0, 5)
		for i := 0; i < 5; i++ {
			b, err := ctrl.Place(ctx)
			if err != nil {
				t.Fatalf("Place() failed: %v", err)
			}
			out = append(out, b.Color.String())
		}
		return out
	}

	first, second, replay := session(1), session(2), session(1)
	if strings.Join(first, ",") == strings.Join(second, ",") {
		t.Errorf("sessions 1 and 2 drew identical colors %v", first)
	}
	if strings.Join(first, ",") != strings.Join(replay, ",") {
		t.Errorf("same session seed drew %v then %v", first, replay)
	}
}
