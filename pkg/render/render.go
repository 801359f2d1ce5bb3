package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"editorpanel/pkg/layout"
	"editorpanel/pkg/style"
	"editorpanel/pkg/text"
)

// Theme holds the colors used to paint a panel.
type Theme struct {
	Background style.Color
	Label      style.Color // Label element fill
	Editor     style.Color // Editor element fill
	Margin     style.Color // Cell area outside the element bounds
	Guide      style.Color // Column and row separators
	Text       style.Color
}

// DefaultTheme is a light theme with muted fills.
func DefaultTheme() Theme {
	return Theme{
		Background: style.Color{R: 255, G: 255, B: 255},
		Label:      style.Color{R: 204, G: 224, B: 255},
		Editor:     style.Color{R: 214, G: 245, B: 214},
		Margin:     style.Color{R: 250, G: 235, B: 200},
		Guide:      style.Color{R: 160, G: 160, B: 160},
		Text:       style.Color{R: 0, G: 0, B: 0},
	}
}

// captioned elements have a string the renderer can print inside their bounds.
type captioned interface {
	Caption() string
}

type Renderer struct {
	context *gg.Context
	theme   Theme
	face    font.Face
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		context: gg.NewContext(width, height),
		theme:   DefaultTheme(),
		face:    text.DefaultFace,
	}
}

// NewRendererForImage paints onto an existing image.
func NewRendererForImage(target *image.RGBA) *Renderer {
	return &Renderer{
		context: gg.NewContextForRGBA(target),
		theme:   DefaultTheme(),
		face:    text.DefaultFace,
	}
}

// SetTheme replaces the colors used by Render.
func (r *Renderer) SetTheme(t Theme) {
	r.theme = t
}

// SetFace sets the face used for captions.
func (r *Renderer) SetFace(face font.Face) {
	if face != nil {
		r.face = face
	}
}

// Render paints every placement in plan: the cell in the margin color, the
// element bounds in the label or editor color, the caption, then the guides.
func (r *Renderer) Render(plan *layout.Plan) {
	r.setColor(r.theme.Background)
	r.context.Clear()
	r.context.SetFontFace(r.face)

	for _, row := range plan.Rows {
		r.drawPlacement(row.Label, r.theme.Label)
		if row.Editor != nil {
			r.drawPlacement(*row.Editor, r.theme.Editor)
		}
	}

	r.drawGuides(plan)
}

func (r *Renderer) drawPlacement(p layout.Placement, fill style.Color) {
	cell := p.Cell
	if cell.Width > 0 && cell.Height > 0 {
		r.setColor(r.theme.Margin)
		r.context.DrawRectangle(cell.X, cell.Y, cell.Width, cell.Height)
		r.context.Fill()
	}

	b := p.Bounds
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	r.setColor(fill)
	r.context.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	r.context.Fill()

	c, ok := p.Element.(captioned)
	if !ok || c.Caption() == "" {
		return
	}
	// Captions are clipped to the element; gg's Clip is permanent, so
	// push/pop around it.
	r.context.Push()
	r.context.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	r.context.Clip()
	r.setColor(r.theme.Text)
	r.context.DrawStringWrapped(c.Caption(), b.X, b.Y, 0, 0, b.Width, 1, gg.AlignLeft)
	r.context.ResetClip()
	r.context.Pop()
}

// drawGuides outlines the column split and row boundaries.
func (r *Renderer) drawGuides(plan *layout.Plan) {
	height := plan.Height()
	if height <= 0 {
		return
	}
	r.setColor(r.theme.Guide)
	r.context.SetLineWidth(1)

	x := plan.LabelWidth + 0.5
	r.context.DrawLine(x, 0, x, height)
	r.context.Stroke()

	for _, row := range plan.Rows {
		y := row.Y + row.Height - 0.5
		r.context.DrawLine(0, y, plan.Final.Width, y)
		r.context.Stroke()
	}
}

func (r *Renderer) setColor(c style.Color) {
	red, green, blue := c.Floats()
	r.context.SetRGB(red, green, blue)
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

// EncodePNG writes the rendered image to w.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}
