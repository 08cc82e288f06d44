package selection

import (
	"image"
	"testing"

	"github.com/soocke/frametrack/domain/geometry"
)

// identity maps display to source one to one.
var identity = geometry.New(image.Pt(200, 100), image.Pt(200, 100))

func TestSelector_ReverseDragNormalizes(t *testing.T) {
	var s Selector
	s.Begin(image.Pt(50, 50))
	live, ok := s.Move(image.Pt(30, 20))
	if !ok || live != image.Rect(30, 20, 50, 50) {
		t.Fatalf("unexpected live rect %v ok=%v", live, ok)
	}
	res, ok := s.End(image.Pt(10, 10), identity)
	if !ok {
		t.Fatalf("expected commit")
	}
	if res.Display.Min != image.Pt(10, 10) || res.Display.Dx() != 40 || res.Display.Dy() != 40 {
		t.Fatalf("expected display rect (10,10,40,40), got %v", res.Display)
	}
	if res.Source != res.Display {
		t.Fatalf("identity geometry should map unchanged, got %v", res.Source)
	}
	if s.Active() {
		t.Fatalf("selector should be idle after release")
	}
}

func TestSelector_DegenerateReleaseDiscarded(t *testing.T) {
	cases := []image.Point{{50, 50}, {50, 80}, {90, 50}}
	for _, end := range cases {
		var s Selector
		s.Begin(image.Pt(50, 50))
		if _, ok := s.End(end, identity); ok {
			t.Fatalf("zero-size drag to %v should be discarded", end)
		}
		if s.Active() {
			t.Fatalf("discarded drag must leave selector idle")
		}
	}
}

func TestSelector_ReleaseWithoutPress(t *testing.T) {
	var s Selector
	if _, ok := s.Move(image.Pt(3, 3)); ok {
		t.Fatalf("move without press should be ignored")
	}
	if _, ok := s.End(image.Pt(3, 3), identity); ok {
		t.Fatalf("release without press should be ignored")
	}
}

func TestSelector_MapsThroughLetterbox(t *testing.T) {
	// 400x200 frame in a 200x200 widget: scale 0.5, 50px bars top and bottom.
	g := geometry.New(image.Pt(200, 200), image.Pt(400, 200))
	var s Selector
	s.Begin(image.Pt(10, 60))
	res, ok := s.End(image.Pt(60, 110), g)
	if !ok {
		t.Fatalf("expected commit")
	}
	if res.Source != image.Rect(20, 20, 120, 120) {
		t.Fatalf("unexpected source rect %v", res.Source)
	}

	s.Begin(image.Pt(10, 5))
	if _, ok := s.End(image.Pt(60, 40), g); ok {
		t.Fatalf("drag inside the bar should not commit")
	}
}

func TestSelector_CancelDropsLive(t *testing.T) {
	var s Selector
	s.Begin(image.Pt(1, 1))
	s.Move(image.Pt(9, 9))
	s.Cancel()
	if _, ok := s.Live(); ok {
		t.Fatalf("live rect should be cleared by cancel")
	}
	if _, ok := s.End(image.Pt(20, 20), identity); ok {
		t.Fatalf("release after cancel should not commit")
	}
}
