package help

import (
	"strings"
	"testing"
)

func TestRenderAll(t *testing.T) {
	out := Render(nil)
	for _, c := range EmergencyContacts {
		if !strings.Contains(out, c.Number) {
			t.Errorf("missing contact %s", c.Name)
		}
	}
	for _, f := range FAQs {
		if !strings.Contains(out, f.Question) {
			t.Errorf("missing question %q", f.Question)
		}
	}
	if !strings.Contains(out, "emergency room") {
		t.Error("answers should be shown when expanded is nil")
	}
}

func TestRenderCollapsed(t *testing.T) {
	out := Render(map[int]bool{1: true})
	if !strings.Contains(out, "stored locally on your device") {
		t.Error("expanded answer missing")
	}
	if strings.Contains(out, "same time each day") {
		t.Error("collapsed answer shown")
	}
}

func TestWrap(t *testing.T) {
	out := wrap("one two three four five six", 12, "  ")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len(line) > 12 {
			t.Errorf("line %q longer than 12", line)
		}
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q not indented", line)
		}
	}
}
