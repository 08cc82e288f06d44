package theme

// Palette and ttk styles for the player window. Apply once after Tk starts;
// SetDark re-applies everything for the other mode.

import (
	tk "modernc.org/tk9.0"
)

// Light palette.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // play button, title
	ColorDanger    = "#dc2626"
	ColorAccent    = "#10b981" // tracking
	ColorWarn      = "#eab308" // armed
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
	ColorVideoBg   = "#000000"
)

// Palette is the resolved set of colours for the active mode.
type Palette struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Warn      string
	Text      string
	TextMuted string
	VideoBg   string
}

var (
	light = Palette{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Accent:    ColorAccent,
		Warn:      ColorWarn,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
		VideoBg:   ColorVideoBg,
	}
	dark = Palette{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Border:    "#334155",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Accent:    "#10b981",
		Warn:      "#facc15",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
		VideoBg:   ColorVideoBg,
	}
)

// Style names, used as Style(StylePrimaryButton) etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleTitleLabel    = "title.TLabel"
	StyleStateLabel    = "state.TLabel"
	StyleStatusLabel   = "status.TLabel"
)

var darkMode bool

// Current returns the palette for the active mode.
func Current() Palette {
	if darkMode {
		return dark
	}
	return light
}

// SetDark switches mode and re-applies styles. Returns the new mode.
func SetDark(on bool) bool {
	darkMode = on
	applyStyles(Current())
	return darkMode
}

func applyStyles(p Palette) {
	_ = tk.ActivateTheme("azure light") // baseline metrics
	tk.App.Configure(tk.Background(p.AppBg))

	tk.StyleConfigure(StylePrimaryButton,
		tk.Background(p.Primary),
		tk.Foreground("white"),
		tk.Padding("4p 3p"),
		tk.Borderwidth(1),
		tk.Relief("ridge"),
	)
	tk.StyleConfigure(StyleDangerButton,
		tk.Background(p.Danger),
		tk.Foreground("white"),
		tk.Padding("4p 3p"),
		tk.Borderwidth(1),
		tk.Relief("ridge"),
	)
	tk.StyleConfigure(StyleTitleLabel,
		tk.Foreground(p.Primary),
		tk.Background(p.Surface),
		tk.Padding("2p 1p"),
	)
	tk.StyleConfigure(StyleStateLabel,
		tk.Foreground("white"),
		tk.Background(p.Accent),
		tk.Padding("4p 2p"),
		tk.Borderwidth(1),
		tk.Relief("groove"),
	)
	tk.StyleConfigure(StyleStatusLabel,
		tk.Foreground(p.TextMuted),
		tk.Background(p.AppBg),
		tk.Padding("2p 1p"),
	)
}
