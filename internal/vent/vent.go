package vent

import (
	"container/heap"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/models"
)

// expiry is one scheduled removal
type expiry struct {
	id       string
	deadline time.Time
}

// expiryQueue is a min-heap of deadlines
type expiryQueue []expiry

func (q expiryQueue) Len() int { return len(q) }
func (q expiryQueue) Less(i, j int) bool {
	return q[i].deadline.Before(q[j].deadline)
}
func (q expiryQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *expiryQueue) Push(x any) {
	*q = append(*q, x.(expiry))
}

func (q *expiryQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Board holds anonymous posts in memory, newest first. Each post is removed
// by Sweep once its TTL has elapsed. Nothing is persisted.
type Board struct {
	posts   []models.VentPost
	expires expiryQueue
	ttl     time.Duration
	now     func() time.Time
	newID   func() string
}

func NewBoard() *Board {
	return &Board{
		ttl:   constants.VentPostTTL,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SetClock replaces the time source, for tests
func (b *Board) SetClock(now func() time.Time) {
	b.now = now
}

// Post adds a message stamped with the current time
func (b *Board) Post(message string) (models.VentPost, error) {
	if strings.TrimSpace(message) == "" {
		return models.VentPost{}, models.ErrEmptyText
	}
	return b.add(message, b.now()), nil
}

func (b *Board) add(message string, ts time.Time) models.VentPost {
	post := models.VentPost{ID: b.newID(), Message: message, Timestamp: ts}
	b.posts = append([]models.VentPost{post}, b.posts...)
	heap.Push(&b.expires, expiry{id: post.ID, deadline: ts.Add(b.ttl)})
	logger.Debug("Vent post added", "id", post.ID, "expires", ts.Add(b.ttl).Format(time.Kitchen))
	return post
}

// SeedSamples adds the three welcome posts, dated a few minutes in the past
func (b *Board) SeedSamples() {
	now := b.now()
	samples := []struct {
		msg string
		ago time.Duration
	}{
		// oldest first so the board ends up newest first
		{"Having one of those days where everything feels like a struggle.", 8 * time.Minute},
		{"Why is it so hard to make friends as an adult?", 5 * time.Minute},
		{"Feeling overwhelmed with work and personal life. Just need a break.", 2 * time.Minute},
	}
	for _, s := range samples {
		b.add(s.msg, now.Add(-s.ago))
	}
}

// Posts returns the active posts, newest first
func (b *Board) Posts() []models.VentPost {
	out := make([]models.VentPost, len(b.posts))
	copy(out, b.posts)
	return out
}

func (b *Board) Len() int {
	return len(b.posts)
}

// Sweep removes every post whose deadline is at or before now and returns
// how many were removed.
func (b *Board) Sweep(now time.Time) int {
	removed := 0
	for b.expires.Len() > 0 && !b.expires[0].deadline.After(now) {
		e := heap.Pop(&b.expires).(expiry)
		if b.Remove(e.id) {
			removed++
		}
	}
	if removed > 0 {
		logger.Debug("Vent posts expired", "removed", removed, "remaining", len(b.posts))
	}
	return removed
}

// NextDeadline reports when the next post expires
func (b *Board) NextDeadline() (time.Time, bool) {
	if b.expires.Len() == 0 {
		return time.Time{}, false
	}
	return b.expires[0].deadline, true
}

// Remove deletes a post by id. Removing an unknown id is a no-op.
func (b *Board) Remove(id string) bool {
	for i := range b.posts {
		if b.posts[i].ID == id {
			b.posts = append(b.posts[:i], b.posts[i+1:]...)
			return true
		}
	}
	return false
}

// TimeAgo renders how long ago a post was made, in whole minutes
func TimeAgo(post models.VentPost, now time.Time) string {
	minutes := int(now.Sub(post.Timestamp) / time.Minute)
	switch {
	case minutes < 1:
		return "just now"
	case minutes == 1:
		return "1 minute ago"
	default:
		return fmt.Sprintf("%d minutes ago", minutes)
	}
}
