package view

import (
	"image"
	"image/color"
	"strconv"

	"github.com/soocke/frametrack/domain/geometry"
	"github.com/soocke/frametrack/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandlers receive presses, drags and releases in widget coordinates.
type PointerHandlers struct {
	Down func(p image.Point)
	Move func(p image.Point)
	Up   func(p image.Point)
}

// VideoSurface is the primary display: a frame sized by the grid holding one
// image label. The label always shows an image rendered at the frame's
// current size, so label coordinates are display coordinates.
type VideoSurface struct {
	frame  *FrameWidget
	label  *LabelWidget
	photo  *Img // current Tk photo, deleted when replaced
	splash image.Image
	size   image.Point // zero until the first <Configure>
	hint   image.Point // requested size, used before that
	resize func(w, h int)
}

// NewVideoSurface grids the surface into parent at row/col. splash is shown
// whenever there is no media; onResize receives every new size.
func NewVideoSurface(parent *FrameWidget, row, col int, width, height int, bg string, splash image.Image, ptr PointerHandlers, onResize func(w, h int)) *VideoSurface {
	v := &VideoSurface{splash: splash, hint: image.Pt(width, height), resize: onResize}
	v.frame = Frame(Width(width), Height(height), Background(bg), Borderwidth(0))
	Grid(v.frame, In(parent), Row(row), Column(col), Sticky("nsew"))
	GridRowConfigure(v.frame.Window, 0, Weight(1))
	GridColumnConfigure(v.frame.Window, 0, Weight(1))

	v.photo = NewPhoto(Data(images.EncodePNG(v.placeholder())))
	// no padding or border: event coordinates must match the letterboxed image
	v.label = Label(Image(v.photo), Background(bg), Borderwidth(0), Padx(0), Pady(0), Anchor("center"))
	Grid(v.label, In(v.frame), Row(0), Column(0), Sticky("nsew"))

	bindPointer(v.label, ptr)
	Bind(v.frame, "<Configure>", Command(func(e *Event) {
		w, _ := strconv.Atoi(e.Width)
		h, _ := strconv.Atoi(e.Height)
		v.onConfigure(w, h)
	}))
	return v
}

func bindPointer(w *LabelWidget, ptr PointerHandlers) {
	if ptr.Down != nil {
		Bind(w, "<ButtonPress-1>", Command(func(e *Event) { ptr.Down(image.Pt(e.X, e.Y)) }))
	}
	if ptr.Move != nil {
		Bind(w, "<B1-Motion>", Command(func(e *Event) { ptr.Move(image.Pt(e.X, e.Y)) }))
	}
	if ptr.Up != nil {
		Bind(w, "<ButtonRelease-1>", Command(func(e *Event) { ptr.Up(image.Pt(e.X, e.Y)) }))
	}
}

func (v *VideoSurface) onConfigure(w, h int) {
	if w <= 1 || h <= 1 {
		return
	}
	if v.size == image.Pt(w, h) {
		return
	}
	v.size = image.Pt(w, h)
	if v.resize != nil {
		v.resize(w, h)
	}
}

// Size is the last known widget size, zero before the widget is mapped.
func (v *VideoSurface) Size() image.Point { return v.size }

// ShowFrame replaces the displayed image. The old photo is deleted so Tk
// does not keep one pixel buffer per frame.
func (v *VideoSurface) ShowFrame(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	v.swap(images.EncodePNG(img))
}

// ResetFrame shows the splash letterboxed into the current size.
func (v *VideoSurface) ResetFrame() {
	if v == nil || v.label == nil {
		return
	}
	v.swap(images.EncodePNG(v.placeholder()))
}

func (v *VideoSurface) swap(png []byte) {
	if len(png) == 0 {
		return
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(png))
	v.label.Configure(Image(v.photo))
}

func (v *VideoSurface) placeholder() image.Image {
	w, h := v.size.X, v.size.Y
	if w == 0 || h == 0 {
		w, h = v.hint.X, v.hint.Y
	}
	if w < 50 {
		w = 50
	}
	if h < 50 {
		h = 50
	}
	if v.splash != nil {
		g := geometry.New(image.Pt(w, h), v.splash.Bounds().Size())
		if canvas := images.Letterbox(v.splash, g, color.Black); canvas != nil {
			return canvas
		}
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}
