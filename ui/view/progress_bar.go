package view

import (
	"strconv"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

const progressMax = 1000

// ProgressBar shows the playback position with a clock label beside it.
// A click on the bar seeks to the clicked fraction.
type ProgressBar struct {
	bar   *TProgressbarWidget
	clock *LabelWidget
	width int
	shown int // last value pushed to Tk, to skip redundant updates
	text  string
}

// NewProgressBar grids the bar and clock into parent at row, spanning cols.
func NewProgressBar(parent *FrameWidget, row, cols int, onSeek func(fraction float64)) *ProgressBar {
	p := &ProgressBar{shown: -1}
	p.bar = TProgressbar(Orient("horizontal"), Mode("determinate"), Maximum(progressMax), Value(0))
	Grid(p.bar, In(parent), Row(row), Column(0), Columnspan(cols-1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	p.clock = Label(Txt("00:00 / 00:00"), Width(16), Anchor("e"))
	Grid(p.clock, In(parent), Row(row), Column(cols-1), Sticky("e"), Padx("0.4m"), Pady("0.3m"))

	Bind(p.bar, "<Configure>", Command(func(e *Event) { p.width, _ = strconv.Atoi(e.Width) }))
	if onSeek != nil {
		Bind(p.bar, "<ButtonPress-1>", Command(func(e *Event) {
			if f, ok := seekFraction(e.X, p.width); ok {
				onSeek(f)
			}
		}))
	}
	return p
}

// SetProgress moves the bar to fraction in [0,1] and sets the clock text.
func (p *ProgressBar) SetProgress(fraction float64, clock string) {
	if p == nil || p.bar == nil {
		return
	}
	v := int(fraction*progressMax + 0.5)
	if v != p.shown {
		p.shown = v
		p.bar.Configure(Value(v))
	}
	if clock != p.text && p.clock != nil {
		p.text = clock
		p.clock.Configure(Txt(clock))
	}
}

// seekFraction converts a click x inside a bar of width w to [0,1].
func seekFraction(x, w int) (float64, bool) {
	if w <= 1 {
		return 0, false
	}
	f := float64(x) / float64(w-1)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return f, true
}
