package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"tight-lines/internal/game"
)

const statusRows = 3

// viewport scales pond coordinates onto terminal cells
type viewport struct {
	width, height int
	world         game.Bounds // full drawable pond space, sky included
}

func (v viewport) sceneHeight() int {
	return max(v.height-statusRows, 1)
}

// cell converts a pond position to a screen cell, clamped to the scene
func (v viewport) cell(p game.Vec2) (int, int) {
	w := v.world.Right - v.world.Left
	h := v.world.Bottom - v.world.Top
	x := int((p.X - v.world.Left) / w * float64(v.width))
	y := int((p.Y - v.world.Top) / h * float64(v.sceneHeight()))
	return min(max(x, 0), v.width-1), min(max(y, 0), v.sceneHeight()-1)
}

func (v viewport) row(y float64) int {
	_, r := v.cell(game.Vec2{X: v.world.Left, Y: y})
	return r
}

// frame is everything drawn in one refresh
type frame struct {
	snap    game.Snapshot
	layout  game.Layout
	reelTop float64
	market  []marketRow
	sellFor int
	message string
	titles  func(name string) string
}

// marketRow is one upgrade line of the market panel
type marketRow struct {
	key   rune
	name  string
	level int
	cost  int
	maxed bool
}

type palette struct {
	sky, water tcell.Color
}

var palettes = map[game.TimeOfDay]palette{
	game.Morning:   {sky: tcell.NewRGBColor(250, 214, 165), water: tcell.NewRGBColor(64, 164, 200)},
	game.Afternoon: {sky: tcell.NewRGBColor(135, 206, 235), water: tcell.NewRGBColor(30, 120, 190)},
	game.Evening:   {sky: tcell.NewRGBColor(230, 120, 80), water: tcell.NewRGBColor(60, 70, 140)},
	game.Night:     {sky: tcell.NewRGBColor(15, 15, 45), water: tcell.NewRGBColor(10, 25, 70)},
}

var tierColors = map[game.Tier]tcell.Color{
	game.TierCommon:    tcell.ColorWhite,
	game.TierRare:      tcell.ColorYellow,
	game.TierLegendary: tcell.ColorFuchsia,
	game.TierTrash:     tcell.ColorGray,
	game.TierHazard:    tcell.ColorRed,
}

var laneGlyphs = map[game.Lane]rune{
	game.LaneLeft:  '←',
	game.LaneUp:    '↑',
	game.LaneDown:  '↓',
	game.LaneRight: '→',
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// swimmerGlyph picks the ascii shape for a swimmer facing its direction
func swimmerGlyph(sw game.Swimmer) string {
	right := sw.Direction >= 0
	switch sw.Species.Tier {
	case game.TierTrash:
		return "[#]"
	case game.TierHazard:
		if right {
			return "}=>"
		}
		return "<={"
	}
	if right {
		return "><>"
	}
	return "<><"
}

func draw(s tcell.Screen, v viewport, f frame) {
	s.Clear()
	pal, ok := palettes[f.snap.TimeOfDay]
	if !ok {
		pal = palettes[game.Morning]
	}

	drawBackdrop(s, v, f.layout, pal)
	drawDock(s, v, f, pal)
	for _, sw := range f.snap.Swimmers {
		x, y := v.cell(sw.Position)
		glyph := swimmerGlyph(sw)
		style := tcell.StyleDefault.Background(pal.water).Foreground(tierColors[sw.Species.Tier])
		drawText(s, x-len(glyph)/2, y, style, glyph)
	}
	drawBobber(s, v, f, pal)

	if f.snap.Hook != nil {
		drawHook(s, v, f)
	}
	if f.snap.Reel != nil {
		drawReel(s, v, f)
	}
	if f.snap.Phase == game.PhaseMarket {
		drawMarket(s, v, f)
	}
	drawStatus(s, v, f)
	s.Show()
}

func drawBackdrop(s tcell.Screen, v viewport, layout game.Layout, pal palette) {
	waterTop := v.row(layout.Water.Top)
	sand := v.row(layout.SandY)
	skyStyle := tcell.StyleDefault.Background(pal.sky)
	waterStyle := tcell.StyleDefault.Background(pal.water).Foreground(tcell.ColorLightCyan)
	sandStyle := tcell.StyleDefault.Background(tcell.NewRGBColor(194, 178, 128)).Foreground(tcell.ColorSaddleBrown)

	for y := 0; y < v.sceneHeight(); y++ {
		for x := 0; x < v.width; x++ {
			switch {
			case y < waterTop:
				s.SetContent(x, y, ' ', nil, skyStyle)
			case y == waterTop:
				s.SetContent(x, y, '~', nil, waterStyle)
			case y > sand:
				s.SetContent(x, y, '.', nil, sandStyle)
			default:
				s.SetContent(x, y, ' ', nil, waterStyle)
			}
		}
	}
}

func drawDock(s tcell.Screen, v viewport, f frame, pal palette) {
	x, y := v.cell(game.Vec2{X: f.layout.DockX, Y: f.layout.StartY})
	style := tcell.StyleDefault.Background(pal.sky).Foreground(tcell.ColorSaddleBrown)
	drawText(s, x-4, y, style, "====|====")
}

func drawBobber(s tcell.Screen, v viewport, f frame, pal palette) {
	b := f.snap.Bobber
	_, dockY := v.cell(game.Vec2{X: f.layout.DockX, Y: f.layout.StartY})
	x, y := v.cell(game.Vec2{X: b.X, Y: b.Y})
	waterTop := v.row(f.layout.Water.Top)

	for ly := dockY + 1; ly < y; ly++ {
		bg := pal.water
		if ly < waterTop {
			bg = pal.sky
		}
		s.SetContent(x, ly, '|', nil, tcell.StyleDefault.Background(bg).Foreground(tcell.ColorSilver))
	}

	fg := tcell.ColorWhite
	if b.HasCaught {
		fg = tcell.ColorRed
	}
	bg := pal.water
	if y < waterTop {
		bg = pal.sky
	}
	s.SetContent(x, y, 'o', nil, tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true))
}

func drawBox(s tcell.Screen, x, y, w, h int, title string) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r := ' '
			switch {
			case row == y || row == y+h-1:
				r = '-'
			case col == x || col == x+w-1:
				r = '|'
			}
			s.SetContent(col, row, r, nil, style)
		}
	}
	if title != "" {
		drawText(s, x+2, y, style.Bold(true), " "+title+" ")
	}
}

func drawHook(s tcell.Screen, v viewport, f frame) {
	h := f.snap.Hook
	barCells := min(v.width-6, 60)
	if barCells < 10 {
		return
	}
	x0 := (v.width - barCells) / 2
	y0 := v.sceneHeight()/2 - 2
	drawBox(s, x0-2, y0, barCells+4, 5, "Hook the "+f.titles(h.Species)+"!")

	toCell := func(pos float64) int {
		c := int(pos / h.BarWidth * float64(barCells))
		return x0 + min(max(c, 0), barCells-1)
	}
	bar := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	zone := tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	for c := x0; c < x0+barCells; c++ {
		s.SetContent(c, y0+2, '-', nil, bar)
	}
	for c := toCell(h.Zone.Left); c <= toCell(h.Zone.Right); c++ {
		s.SetContent(c, y0+2, '=', nil, zone)
	}

	marker := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed).Bold(true)
	if h.Zone.Contains(h.Marker) {
		marker = marker.Foreground(tcell.ColorLime)
	}
	s.SetContent(toCell(h.Marker), y0+2, '█', nil, marker)
}

func drawReel(s tcell.Screen, v viewport, f frame) {
	r := f.snap.Reel
	const laneCells = 4
	panelW := laneCells*len(game.Lanes) + 4
	x0 := v.width - panelW - 1
	if x0 < 0 {
		return
	}
	drawBox(s, x0, 0, panelW, v.sceneHeight(), "Reel")

	top, bottom := f.reelTop, r.HitZoneY+2*(r.HitZoneY-f.reelTop)/10
	rows := v.sceneHeight() - 2
	toRow := func(y float64) int {
		row := int((y - top) / (bottom - top) * float64(rows))
		return 1 + min(max(row, 0), rows-1)
	}

	hitRow := toRow(r.HitZoneY)
	guide := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	for i, lane := range game.Lanes {
		s.SetContent(x0+2+i*laneCells+1, hitRow, laneGlyphs[lane], nil, guide)
	}

	for _, tok := range r.Tokens {
		if tok.Y < top {
			continue
		}
		style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
		switch tok.Status {
		case game.TokenHit:
			style = style.Foreground(tcell.ColorLime)
		case game.TokenMissed:
			style = style.Foreground(tcell.ColorRed)
		}
		s.SetContent(x0+2+int(tok.Lane)*laneCells+1, toRow(tok.Y), laneGlyphs[tok.Lane], nil, style)
	}

	info := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	drawText(s, x0+1, v.sceneHeight()-2, info, fmt.Sprintf("%d/%d %4.1fs", r.Hits, r.Required, r.TimeLeft))
}

func drawMarket(s tcell.Screen, v viewport, f frame) {
	w := min(v.width-4, 48)
	h := len(f.market) + 6
	x0 := (v.width - w) / 2
	y0 := max((v.sceneHeight()-h)/2, 0)
	drawBox(s, x0, y0, w, h, "Market")

	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	sell := "s  nothing to sell"
	if f.snap.Score > 0 {
		sell = fmt.Sprintf("s  sell %d points for $%d", f.snap.Score, f.sellFor)
	}
	drawText(s, x0+2, y0+2, style, sell)
	for i, row := range f.market {
		price := fmt.Sprintf("$%d", row.cost)
		if row.maxed {
			price = "max"
		}
		line := fmt.Sprintf("%c  %-14s lvl %-2d %s", row.key, row.name, row.level, price)
		rowStyle := style
		if !row.maxed && row.cost > f.snap.Money {
			rowStyle = rowStyle.Foreground(tcell.ColorGray)
		}
		drawText(s, x0+2, y0+3+i, rowStyle, line)
	}
}

func drawStatus(s tcell.Screen, v viewport, f frame) {
	y := v.sceneHeight()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	snap := f.snap
	drawText(s, 0, y, style.Bold(true), statusLine(snap))
	drawText(s, 0, y+1, style.Foreground(tcell.ColorYellow), f.message)
	drawText(s, 0, y+2, style.Foreground(tcell.ColorGray), helpLine(snap.Phase))
}

func statusLine(snap game.Snapshot) string {
	levels := make([]string, 0, len(game.UpgradeKinds))
	for _, k := range game.UpgradeKinds {
		levels = append(levels, fmt.Sprintf("%s %d", k, snap.Levels[k]))
	}
	return fmt.Sprintf("%s  |  score %d  money $%d  |  %s  |  creel %d",
		snap.DayLabel, snap.Score, snap.Money, strings.Join(levels, " "), len(snap.Creel))
}

func helpLine(phase game.Phase) string {
	switch phase {
	case game.PhaseHooking:
		return "space: set the hook"
	case game.PhaseReeling:
		return "arrows/wasd: match the falling arrows"
	case game.PhaseMarket:
		return "s: sell  1/2/3: buy line/bait/rod  m/esc: back to the water"
	default:
		return "space: cast  m: market  q: quit"
	}
}
