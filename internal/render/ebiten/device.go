package ebiten

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/jumpman/internal/render"
	"chosenoffset.com/jumpman/internal/render/pipeline"
	"chosenoffset.com/jumpman/internal/render/raster"
	"chosenoffset.com/jumpman/internal/scene"
)

// shadowGray is the shadow map level under a caster. The map is cleared to
// white, so unshadowed receivers keep their lit color.
const shadowGray = 0.45

var frustumColor = color.NRGBA{R: 255, G: 220, B: 80, A: 255}

// Device renders the pipeline passes with ebiten triangle fills.
type Device struct {
	dst       *ebiten.Image
	sky       *ebiten.Image
	white     *ebiten.Image
	shadowMap *ebiten.Image

	target   pipeline.Target
	viewport pipeline.Viewport
	raster   *raster.Rasterizer
	lines    [][4]float32
}

// NewDevice creates a device that draws sky behind the scene. sky may be nil.
func NewDevice(sky image.Image) *Device {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	d := &Device{
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		raster: raster.New(),
	}
	if sky != nil {
		d.sky = ebiten.NewImageFromImage(sky)
	}
	return d
}

// Bind sets the screen image of the next frame.
func (d *Device) Bind(dst render.Image) {
	d.dst = dst.(*EbitenImage).img
}

// Capable fails when ebiten has not selected a graphics library. It is only
// meaningful once the game loop runs.
func (d *Device) Capable() error {
	var info ebiten.DebugInfo
	ebiten.ReadDebugInfo(&info)
	if info.GraphicsLibrary == ebiten.GraphicsLibraryUnknown {
		return errors.New("no graphics library")
	}
	return nil
}

// BeginFramePass flushes the previous pass and starts a new one.
func (d *Device) BeginFramePass(pass pipeline.PassDesc) {
	d.flush()
	d.target = pass.Target
	d.viewport = pass.Viewport
	d.lines = d.lines[:0]

	switch pass.Target {
	case pipeline.TargetShadowMap:
		size := pass.Viewport.Width
		if d.shadowMap == nil || d.shadowMap.Bounds().Dx() != size {
			if d.shadowMap != nil {
				d.shadowMap.Dispose()
			}
			d.shadowMap = ebiten.NewImage(max(size, 1), max(size, 1))
		}
		if pass.Clear {
			d.shadowMap.Fill(color.White)
		}
	default:
		if pass.Clear && d.dst != nil {
			d.dst.Fill(pass.ClearColor)
		}
	}
	d.raster.Reset(pass.Viewport.Width, pass.Viewport.Height)
}

// SubmitDraw queues one draw of the current pass.
func (d *Device) SubmitDraw(program pipeline.Program, u pipeline.Uniforms, item scene.DrawItem) {
	viewProj := u.Projection.Mul4(u.View)

	switch program {
	case pipeline.ProgramDepth:
		d.raster.AddSilhouette(item.World, item.Parts, viewProj, shadowGray)

	case pipeline.ProgramSkybox:
		d.drawSky(item.World)

	case pipeline.ProgramEnvironment:
		p := raster.Params{
			ViewProjection: viewProj,
			Eye:            u.Eye,
			Light:          raster.Light{Position: u.LightPosition, Ambient: u.Ambient},
			Layer:          1,
		}
		if item.Kind == scene.KindPlatform {
			p.Layer = 0
		}
		if u.Shadowed && d.shadowMap != nil {
			tm := u.TextureMatrix
			p.Shadow = &tm
			p.ShadowSize = float32(d.shadowMap.Bounds().Dx())
		}
		d.raster.AddMesh(item.World, item.Parts, p)

	case pipeline.ProgramLines:
		for _, l := range u.Lines {
			x0, y0, x1, y1, ok := raster.ProjectSegment(viewProj, l[0], l[1], d.viewport.Width, d.viewport.Height)
			if ok {
				d.lines = append(d.lines, [4]float32{x0, y0, x1, y1})
			}
		}
	}
}

// PresentFrame flushes the camera pass.
func (d *Device) PresentFrame() {
	d.flush()
}

// drawSky stretches the visible rows of the sky gradient over the screen.
func (d *Device) drawSky(inverse mgl64.Mat4) {
	if d.sky == nil || d.dst == nil {
		return
	}
	top, bottom := raster.SkyRows(inverse)
	h := float64(d.sky.Bounds().Dy())
	y0 := int(math.Floor(top * h))
	y1 := int(math.Ceil(bottom * h))
	if y1 <= y0 {
		y1 = y0 + 1
	}
	rows := d.sky.SubImage(image.Rect(0, y0, d.sky.Bounds().Dx(), y1)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(
		float64(d.viewport.Width)/float64(rows.Bounds().Dx()),
		float64(d.viewport.Height)/float64(rows.Bounds().Dy()),
	)
	d.dst.DrawImage(rows, op)
}

// flush fills the queued triangles into the pass target, then the lines.
func (d *Device) flush() {
	dst := d.dst
	if d.target == pipeline.TargetShadowMap {
		dst = d.shadowMap
	}
	if dst == nil {
		d.raster.Reset(d.viewport.Width, d.viewport.Height)
		return
	}

	for _, b := range raster.Batches(d.raster.Triangles(), raster.MaxBatchVertices) {
		src := d.white
		if b.Source == raster.SourceShadow {
			src = d.shadowMap
		}
		dst.DrawTriangles(toEbitenVertices(b.Vertices, b.Source), b.Indices, src, &ebiten.DrawTrianglesOptions{})
	}
	for _, l := range d.lines {
		vector.StrokeLine(dst, l[0], l[1], l[2], l[3], 1, frustumColor, true)
	}
	d.lines = d.lines[:0]
	d.raster.Reset(d.viewport.Width, d.viewport.Height)
}

func toEbitenVertices(vs []raster.Vertex, src raster.Source) []ebiten.Vertex {
	out := make([]ebiten.Vertex, len(vs))
	for i, v := range vs {
		sx, sy := v.U, v.V
		if src == raster.SourceFlat {
			sx, sy = 1.5, 1.5
		}
		out[i] = ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   sx,
			SrcY:   sy,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: v.A,
		}
	}
	return out
}
