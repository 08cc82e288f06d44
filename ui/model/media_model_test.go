package model

import (
	"path/filepath"
	"testing"
)

func TestMediaModel_RecentAndDir(t *testing.T) {
	m := NewMediaModel("/start")
	if m.Dir() != "/start" {
		t.Fatalf("expected initial dir, got %q", m.Dir())
	}
	a := filepath.Join("videos", "a.mp4")
	b := filepath.Join("clips", "b.mp4")
	m.SetPath(a)
	m.SetPath(b)
	m.SetPath(a)
	if m.Dir() != "videos" || m.Name() != "a.mp4" {
		t.Fatalf("unexpected dir/name %q %q", m.Dir(), m.Name())
	}
	if got := m.Recent(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("recent should be deduplicated newest first, got %v", got)
	}

	m.SetPath("screen:")
	if m.Dir() != "videos" {
		t.Fatalf("screen path must not change dir, got %q", m.Dir())
	}
	m.SetPath("")
	if m.Path() != "" || m.Name() != "" {
		t.Fatalf("empty path clears the open media")
	}
}

func TestMediaModel_RecentIsBounded(t *testing.T) {
	m := NewMediaModel("")
	for i := 0; i < maxRecent+3; i++ {
		m.SetPath(filepath.Join("d", string(rune('a'+i))+".mp4"))
	}
	if len(m.Recent()) != maxRecent {
		t.Fatalf("expected %d recent entries, got %d", maxRecent, len(m.Recent()))
	}
}
