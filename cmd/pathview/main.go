// Command pathview visualizes a grid search in the terminal. It builds a
// random walled grid (or loads one from a file), then steps the search so
// the open set, closed set and final path can be watched growing.
//
// Keys: space or n = one step, enter = run to completion, r = new map,
// q or escape = quit.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridnav/core"
	"gridnav/pathfinding"
)

func main() {
	var (
		width   = flag.Int("width", 48, "grid width for random maps")
		height  = flag.Int("height", 24, "grid height for random maps")
		density = flag.Float64("density", 0.35, "wall density along the random walks")
		budget  = flag.Int("loops", pathfinding.Unbounded, "loop budget, -1 for unbounded")
		mapFile = flag.String("map", "", "ASCII map file ('#' or 'X' blocked, anything else traversable)")
		seed    = flag.Int64("seed", 0, "random seed, 0 for time-based")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	v := &viewer{
		width:   *width,
		height:  *height,
		density: *density,
		budget:  *budget,
		rng:     rand.New(rand.NewSource(*seed)),
	}

	if *mapFile != "" {
		cells, err := loadMapFile(*mapFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "pathview:", err)
			os.Exit(1)
		}
		v.fixed = cells
		v.height = len(cells)
		v.width = len(cells[0])
	}

	if err := v.run(); err != nil {
		fmt.Fprintln(os.Stderr, "pathview:", err)
		os.Exit(1)
	}
}

// loadMapFile parses an ASCII map: '#' and 'X' are walls, every other rune
// is traversable. Rows are padded to the longest line.
func loadMapFile(path string) ([][]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("map file %s is empty", path)
	}
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	cells := make([][]bool, len(lines))
	for y, line := range lines {
		row := make([]bool, width)
		for x := range row {
			row[x] = x >= len(line) || (line[x] != '#' && line[x] != 'X')
		}
		cells[y] = row
	}
	return cells, nil
}

type viewer struct {
	width, height int
	density       float64
	budget        int
	rng           *rand.Rand
	fixed         [][]bool // non-nil when a map file was given

	cells       [][]bool
	start, dest core.Point
	pf          *pathfinding.PathFinder
	stepper     *pathfinding.Stepper
	snap        pathfinding.Snapshot
}

// reset builds a fresh grid and stepper.
func (v *viewer) reset() error {
	if v.fixed != nil {
		v.cells = v.fixed
	} else {
		v.cells = v.randomCells()
	}

	start, ok := v.firstFree(false)
	if !ok {
		return fmt.Errorf("map has no traversable cell")
	}
	dest, ok := v.firstFree(true)
	if !ok || dest == start {
		return fmt.Errorf("map has no distinct destination cell")
	}
	v.start, v.dest = start, dest

	pf, err := pathfinding.NewPathFinder(v.width, v.height)
	if err != nil {
		return err
	}
	if err := pf.LoadMap(v.cells); err != nil {
		return err
	}
	if err := pf.SetStart(start.X, start.Y); err != nil {
		return err
	}
	if err := pf.SetDestination(dest.X, dest.Y); err != nil {
		return err
	}
	stepper, err := pf.NewStepper(v.budget)
	if err != nil {
		return err
	}

	v.pf = pf
	v.stepper = stepper
	v.snap = pathfinding.Snapshot{Current: start}
	return nil
}

// randomCells carves clustered walls via random walks, pdrpinto-vizweb
// style: pick a spot, wander, drop walls along the way.
func (v *viewer) randomCells() [][]bool {
	cells := make([][]bool, v.height)
	for y := range cells {
		cells[y] = make([]bool, v.width)
		for x := range cells[y] {
			cells[y][x] = true
		}
	}
	clusters := (v.width * v.height) / 64
	for c := 0; c < clusters; c++ {
		x, y := v.rng.Intn(v.width), v.rng.Intn(v.height)
		for s := 0; s < 40; s++ {
			if v.rng.Float64() < v.density {
				cells[y][x] = false
			}
			switch v.rng.Intn(4) {
			case 0:
				x++
			case 1:
				x--
			case 2:
				y++
			case 3:
				y--
			}
			if x < 0 || x >= v.width || y < 0 || y >= v.height {
				x, y = v.rng.Intn(v.width), v.rng.Intn(v.height)
			}
		}
	}
	// Keep the corners open so endpoints always exist.
	cells[0][0] = true
	cells[v.height-1][v.width-1] = true
	return cells
}

// firstFree scans for a traversable cell from the top-left, or from the
// bottom-right when reverse is set.
func (v *viewer) firstFree(reverse bool) (core.Point, bool) {
	for i := 0; i < v.width*v.height; i++ {
		j := i
		if reverse {
			j = v.width*v.height - 1 - i
		}
		x, y := j%v.width, j/v.width
		if v.cells[y][x] {
			return core.Point{X: x, Y: y}, true
		}
	}
	return core.Point{}, false
}

func (v *viewer) run() error {
	if err := v.reset(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	for {
		v.draw(screen)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Rune() == ' ' || ev.Rune() == 'n':
				if !v.snap.Done {
					v.snap = v.stepper.Step()
				}
			case ev.Key() == tcell.KeyEnter:
				v.snap = v.stepper.Run()
			case ev.Rune() == 'r':
				if err := v.reset(); err != nil {
					return err
				}
				screen.Clear()
			}
		}
	}
}

var (
	wallStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	openStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	closedStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	pathStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	currentStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	markStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

func (v *viewer) draw(screen tcell.Screen) {
	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			ch, style := ' ', tcell.StyleDefault
			node, ok := v.pf.NodeAt(x, y)
			switch {
			case !ok:
				ch, style = '█', wallStyle
			case node.InPath():
				ch, style = '●', pathStyle
			case node.IsClosed():
				ch, style = '·', closedStyle
			case node.IsOpen():
				ch, style = '+', openStyle
			}
			screen.SetContent(x, y, ch, nil, style)
		}
	}

	cur := v.snap.Current
	if !v.snap.Done {
		screen.SetContent(cur.X, cur.Y, '@', nil, currentStyle)
	}
	screen.SetContent(v.start.X, v.start.Y, 'S', nil, markStyle)
	screen.SetContent(v.dest.X, v.dest.Y, 'D', nil, markStyle)

	status := fmt.Sprintf("step %d  open %d  closed %d", v.snap.StepIndex, v.snap.OpenCount, v.snap.ClosedCount)
	switch {
	case v.snap.Found:
		status += fmt.Sprintf("  path %d cells, cost %.1f", v.snap.Path.Length(), v.snap.Path.Cost)
	case v.snap.Done:
		status += "  no path"
	}
	drawText(screen, 0, v.height, status+"  [space step, enter run, r new map, q quit]")
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	w, _ := screen.Size()
	for i, r := range text {
		if x+i >= w {
			break
		}
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
	// Blank the rest of the line so shorter statuses do not leave residue.
	for i := len(text); x+i < w; i++ {
		screen.SetContent(x+i, y, ' ', nil, tcell.StyleDefault)
	}
}
