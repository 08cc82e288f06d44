package view

import (
	"fmt"
	"time"

	"github.com/soocke/frametrack/domain/video"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// TrackingStats shows the current lock streak, total time locked and the
// number of acquisitions.
type TrackingStats struct {
	streakLbl *LabelWidget
	totalLbl  *LabelWidget
	locksLbl  *LabelWidget
	last      string
}

// NewTrackingStats grids three labels into parent at (row, startCol..startCol+2).
func NewTrackingStats(parent *FrameWidget, row, startCol int) *TrackingStats {
	s := &TrackingStats{streakLbl: Label(Width(16)), totalLbl: Label(Width(14)), locksLbl: Label(Width(10))}
	for i, l := range []*LabelWidget{s.streakLbl, s.totalLbl, s.locksLbl} {
		Grid(l, In(parent), Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
	}
	s.SetTracking(0, 0, 0)
	return s
}

// SetTracking updates the labels, skipping Tk calls when nothing changed.
func (s *TrackingStats) SetTracking(streak, total time.Duration, streaks int) {
	if s == nil || s.streakLbl == nil {
		return
	}
	st, tt := seconds(streak), seconds(total)
	key := fmt.Sprintf("%d/%d/%d", st, tt, streaks)
	if key == s.last {
		return
	}
	s.last = key
	s.streakLbl.Configure(Txt("Tracking: " + video.FormatSeconds(st)))
	s.totalLbl.Configure(Txt("Total: " + video.FormatSeconds(tt)))
	s.locksLbl.Configure(Txt(fmt.Sprintf("Locks: %d", streaks)))
}

func seconds(d time.Duration) int { return int(d.Seconds()) }
