package vent

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/mindmate/internal/models"
)

var base = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func newTestBoard(now *time.Time) *Board {
	b := NewBoard()
	b.SetClock(func() time.Time { return *now })
	return b
}

func TestPostRejectsBlank(t *testing.T) {
	now := base
	b := newTestBoard(&now)

	for _, msg := range []string{"", "   ", "\t\n"} {
		if _, err := b.Post(msg); !errors.Is(err, models.ErrEmptyText) {
			t.Errorf("Post(%q) error = %v, want ErrEmptyText", msg, err)
		}
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestPostsNewestFirst(t *testing.T) {
	now := base
	b := newTestBoard(&now)

	first, _ := b.Post("first")
	now = now.Add(time.Minute)
	second, _ := b.Post("second")

	posts := b.Posts()
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d", len(posts))
	}
	if posts[0].ID != second.ID || posts[1].ID != first.ID {
		t.Errorf("order = [%s %s], want newest first", posts[0].Message, posts[1].Message)
	}
}

func TestTTL(t *testing.T) {
	now := base
	b := newTestBoard(&now)
	post, err := b.Post("let it out")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		at      time.Duration
		present bool
	}{
		{"immediately", 0, true},
		{"one minute", time.Minute, true},
		{"just before ttl", 10*time.Minute - time.Nanosecond, true},
		{"at ttl", 10 * time.Minute, false},
		{"after ttl", 11 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.Sweep(base.Add(tt.at))
			found := false
			for _, p := range b.Posts() {
				if p.ID == post.ID {
					found = true
				}
			}
			if found != tt.present {
				t.Errorf("present at %v = %v, want %v", tt.at, found, tt.present)
			}
		})
	}
}

func TestSweepExpiresInDeadlineOrder(t *testing.T) {
	now := base
	b := newTestBoard(&now)

	b.Post("a")
	now = base.Add(3 * time.Minute)
	b.Post("b")
	now = base.Add(6 * time.Minute)
	b.Post("c")

	if n := b.Sweep(base.Add(12 * time.Minute)); n != 1 {
		t.Errorf("Sweep at 12m removed %d, want 1", n)
	}
	if n := b.Sweep(base.Add(16 * time.Minute)); n != 2 {
		t.Errorf("Sweep at 16m removed %d, want 2", n)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if _, ok := b.NextDeadline(); ok {
		t.Error("NextDeadline() reported a deadline on an empty board")
	}
}

func TestRemoveThenExpire(t *testing.T) {
	now := base
	b := newTestBoard(&now)
	post, _ := b.Post("gone early")

	if !b.Remove(post.ID) {
		t.Fatal("Remove() = false for a live post")
	}
	if b.Remove(post.ID) {
		t.Error("second Remove() = true, want no-op")
	}
	if n := b.Sweep(base.Add(time.Hour)); n != 0 {
		t.Errorf("Sweep() removed %d after manual removal", n)
	}
}

func TestSeedSamples(t *testing.T) {
	now := base
	b := newTestBoard(&now)
	b.SeedSamples()

	posts := b.Posts()
	if len(posts) != 3 {
		t.Fatalf("len(posts) = %d, want 3", len(posts))
	}
	wantAgo := []string{"2 minutes ago", "5 minutes ago", "8 minutes ago"}
	for i, p := range posts {
		if got := TimeAgo(p, now); got != wantAgo[i] {
			t.Errorf("posts[%d] TimeAgo = %q, want %q", i, got, wantAgo[i])
		}
	}

	// the oldest sample was made 8 minutes ago so it expires 2 minutes from now
	if n := b.Sweep(now.Add(2 * time.Minute)); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	deadline, ok := b.NextDeadline()
	if !ok || !deadline.Equal(now.Add(5*time.Minute)) {
		t.Errorf("NextDeadline() = %v, %v", deadline, ok)
	}
}

func TestTimeAgo(t *testing.T) {
	p := models.VentPost{Timestamp: base}
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "just now"},
		{59 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{119 * time.Second, "1 minute ago"},
		{7 * time.Minute, "7 minutes ago"},
	}
	for _, tt := range tests {
		if got := TimeAgo(p, base.Add(tt.elapsed)); got != tt.want {
			t.Errorf("TimeAgo(+%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}
