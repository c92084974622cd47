package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/quasilyte/gdata/v2"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/zucenko/racetrack/model"
	"github.com/zucenko/racetrack/render"
	"github.com/zucenko/racetrack/store"
)

const panelWidth = 170

// StrokeSource represents an input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID ebiten.TouchID
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke is one continuous paint gesture. Cells already touched by
// this gesture are remembered so the brush edits each cell at most
// once between press and release.
type Stroke struct {
	source StrokeSource

	currentX int
	currentY int

	released bool

	handled map[model.Point]bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		currentX: cx,
		currentY: cy,
		handled:  make(map[model.Point]bool),
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	x, y := s.source.Position()
	s.currentX = x
	s.currentY = y
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) Position() (int, int) {
	return s.currentX, s.currentY
}

type Game struct {
	cfg     Config
	storage *gdata.Manager

	// canvas area, taken from the track so a loaded track keeps its
	// stored render size
	canvasW, canvasH int

	track      *model.Track
	trackImage *ebiten.Image
	dirty      bool

	colorButtons []*Button
	kindButtons  []*Button
	frame        *Nine

	selectedColor int
	selectedKind  Kind
	brushSize     int

	strokes map[*Stroke]struct{}

	Tweens      map[*gween.Tween]*Action
	notice      string
	noticeAlpha float64
}

func NewGame(cfg Config) *Game {
	storage, err := store.Open()
	if err != nil {
		log.Warnf("track storage unavailable: %v", err)
		storage = nil
	}

	track := model.Blank(cfg.GridRows, cfg.GridCols, cfg.CanvasWidth, cfg.CanvasHeight)
	if cfg.StartingTrack != "" && storage != nil {
		loaded, err := store.Load(storage, cfg.StartingTrack)
		if err != nil {
			log.Warnf("starting track %q: %v", cfg.StartingTrack, err)
		} else {
			log.Infof("loaded track %q", cfg.StartingTrack)
			track = loaded
		}
	}

	g := &Game{
		cfg:           cfg,
		storage:       storage,
		canvasW:       track.ScreenW,
		canvasH:       track.ScreenH,
		track:         track,
		dirty:         true,
		frame:         NewSelectionFrame(),
		selectedColor: 1,
		selectedKind:  KindWall,
		brushSize:     1,
		strokes:       make(map[*Stroke]struct{}),
		Tweens:        make(map[*gween.Tween]*Action),
	}

	const swatch = 30
	for i := 0; i < cfg.PaletteSize; i++ {
		g.colorButtons = append(g.colorButtons, &Button{
			X: g.canvasW + 30, Y: 20 + 50*i,
			Width: swatch, Height: swatch,
			Image: ebiten.NewImageFromImage(render.Swatch(swatch, swatch, i)),
		})
	}
	kindIcons := []*ebiten.Image{
		ebiten.NewImageFromImage(render.Swatch(swatch, swatch, 0)),
		ebiten.NewImageFromImage(render.ButtonIcon(swatch, swatch)),
		ebiten.NewImageFromImage(render.StarIcon(swatch, swatch)),
		ebiten.NewImageFromImage(render.SpawnIcon(swatch, swatch)),
	}
	for i, icon := range kindIcons {
		g.kindButtons = append(g.kindButtons, &Button{
			X: g.canvasW + 100, Y: 20 + 50*i,
			Width: swatch, Height: swatch,
			Image: icon,
		})
	}
	return g
}

func (g *Game) Update() error {
	for t, a := range g.Tweens {
		curr, finished := t.Update(0.02)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(g.Tweens, t)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if !g.selectAt(mx, my) {
			g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		if !g.selectAt(tx, ty) {
			g.strokes[NewStroke(&TouchStrokeSource{ID: id})] = struct{}{}
		}
	}

	for s := range g.strokes {
		s.Update()
		g.paint(s)
		if s.IsReleased() {
			delete(g.strokes, s)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.brushSize++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.brushSize > 1 {
		g.brushSize--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.track.Toggle(g.selectedColor)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.save()
	}
	return nil
}

// selectAt hit-tests the sidebar. It reports whether the press landed
// on a button, in which case no paint stroke begins.
func (g *Game) selectAt(x, y int) bool {
	for i, b := range g.colorButtons {
		if b.Inside(x, y) {
			g.selectedColor = i
			return true
		}
	}
	for i, b := range g.kindButtons {
		if b.Inside(x, y) {
			g.selectedKind = Kind(i)
			return true
		}
	}
	return false
}

// paint applies the current tool through the brush square around the
// cursor cell. Pixels outside the canvas never reach GridCoord.
func (g *Game) paint(s *Stroke) {
	x, y := s.Position()
	if x < 0 || y < 0 || x >= g.canvasW || y >= g.canvasH {
		return
	}
	center := g.track.GridCoord(float64(x), float64(y))
	inactive := ebiten.IsKeyPressed(ebiten.KeyA)
	for _, p := range g.track.BrushCells(center, g.brushSize) {
		if s.handled[p] {
			continue
		}
		s.handled[p] = true
		switch g.selectedKind {
		case KindWall:
			g.track.PaintWall(p, g.selectedColor, !inactive)
		case KindButton:
			g.track.PaintButton(p, g.selectedColor)
		case KindTarget:
			g.track.PlaceTarget(p)
		case KindSpawn:
			g.track.PlaceSpawn(p)
		}
		g.dirty = true
	}
}

func (g *Game) save() {
	if g.storage == nil {
		log.Warn("no storage, track not saved")
		g.showNotice("storage unavailable")
		return
	}
	if err := store.Save(g.storage, g.cfg.SaveName, g.track); err != nil {
		log.Errorf("save track %q: %v", g.cfg.SaveName, err)
		g.showNotice("save failed")
		return
	}
	log.Infof("saved track %q", g.cfg.SaveName)
	g.showNotice(fmt.Sprintf("saved %q", g.cfg.SaveName))
}

func (g *Game) showNotice(s string) {
	g.notice = s
	g.noticeAlpha = 1
	t := gween.New(1, 0, 2, ease.OutQuad)
	a := &Action{onChange: func(v float32) {
		g.noticeAlpha = float64(v)
	}}
	a.addOnFinish(func() {
		g.notice = ""
	})
	g.Tweens[t] = a
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty || g.trackImage == nil {
		g.trackImage = ebiten.NewImageFromImage(
			render.Track(g.track, g.canvasW, g.canvasH))
		g.dirty = false
	}

	screen.Fill(color.RGBA{0xa6, 0xa6, 0xa6, 0xff})
	screen.DrawImage(g.trackImage, &ebiten.DrawImageOptions{})

	for i, b := range g.colorButtons {
		b.Draw(screen)
		if i == g.selectedColor {
			g.frame.SetSize(b.Width+20, b.Height+20)
			g.frame.SetPosition(b.X-10, b.Y-10)
			g.frame.Draw(screen)
		}
	}
	for i, b := range g.kindButtons {
		b.Draw(screen)
		if Kind(i) == g.selectedKind {
			g.frame.SetSize(b.Width+20, b.Height+20)
			g.frame.SetPosition(b.X-10, b.Y-10)
			g.frame.Draw(screen)
		}
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s brush:%d", g.selectedKind.Name(), g.brushSize),
		g.canvasW+10, g.canvasH-40)

	if g.notice != "" {
		a := uint8(255 * g.noticeAlpha)
		text.Draw(screen, g.notice, basicfont.Face7x13,
			g.canvasW+10, g.canvasH-16, color.RGBA{A: a})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvasW + panelWidth, g.canvasH
}

func main() {
	cfg, err := LoadConfig("racetrack.yml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	g := NewGame(cfg)
	ebiten.SetWindowSize(g.canvasW+panelWidth, g.canvasH)
	ebiten.SetWindowTitle("Track Builder")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
