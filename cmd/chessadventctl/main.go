// Command chessadventctl is a line-oriented CLI driving the engine
// programmatically, in the spirit of the teacher's UCI front end but
// text-command-driven rather than protocol-driven: not part of the
// core, an external collaborator only.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chessadvent/chessadvent/internal/board"
	"github.com/chessadvent/chessadvent/internal/document"
	"github.com/chessadvent/chessadvent/internal/evaluator"
	"github.com/chessadvent/chessadvent/internal/history"
	"github.com/chessadvent/chessadvent/internal/movegen"
	"github.com/chessadvent/chessadvent/internal/piece"
	"github.com/chessadvent/chessadvent/internal/render"
	"github.com/chessadvent/chessadvent/internal/storage"
)

var (
	boardPath = flag.String("board", "", "board document to load at startup (empty: start from an 8x8 empty board)")
	selfTeam  = flag.Int("team", 0, "self team used by score/analyze")
	future    = flag.Int("future", 0, "future-sight depth used by analyze")
	color     = flag.Bool("color", false, "render pieces with ANSI team colors")
)

func main() {
	flag.Parse()

	ctl := &controller{selfTeam: piece.Team(*selfTeam), future: *future, color: *color}
	if *boardPath != "" {
		if err := ctl.load(*boardPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		ctl.b = board.New(8, 8)
	}

	ctl.run()
}

type controller struct {
	b        *board.Board
	hist     history.History
	store    *storage.Store
	selfTeam piece.Team
	future   int
	color    bool
}

func (c *controller) run() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "quit", "exit":
			c.closeStore()
			return
		case "load":
			err = c.cmdLoad(args)
		case "save":
			err = c.cmdSave(args)
		case "render":
			c.cmdRender()
		case "moves":
			err = c.cmdMoves(args)
		case "apply":
			err = c.cmdApply(args)
		case "analyze":
			err = c.cmdAnalyze(args)
		case "score":
			err = c.cmdScore()
		case "undo":
			err = c.cmdUndo()
		case "redo":
			err = c.cmdRedo()
		default:
			err = fmt.Errorf("unknown command %q", cmd)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	c.closeStore()
}

func (c *controller) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b, err := document.Unmarshal(data)
	if err != nil {
		return err
	}
	c.b = b
	c.hist = history.History{}
	return nil
}

func (c *controller) cmdLoad(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load <path>")
	}
	return c.load(args[0])
}

func (c *controller) cmdSave(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: save <path>")
	}
	data, err := document.Marshal(c.b)
	if err != nil {
		return err
	}
	return os.WriteFile(args[0], data, 0644)
}

func (c *controller) cmdRender() {
	if c.color {
		fmt.Println(render.RenderColor(c.b))
	} else {
		fmt.Println(render.Render(c.b))
	}
}

func (c *controller) cmdMoves(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	moves, err := movegen.Generate(c.b, x, y)
	if err != nil {
		return err
	}
	for _, m := range moves {
		fmt.Printf("(%d,%d) dir=%s\n", m.X, m.Y, m.Dir)
	}
	return nil
}

func (c *controller) cmdApply(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: apply <x> <y> <tx> <ty>")
	}
	x, y, err := parseXY(args[:2])
	if err != nil {
		return err
	}
	tx, ty, err := parseXY(args[2:])
	if err != nil {
		return err
	}

	p := c.b.Piece(x, y)
	if p == nil {
		return fmt.Errorf("no piece at (%d,%d)", x, y)
	}

	moves, err := movegen.Generate(c.b, x, y)
	if err != nil {
		return err
	}
	var matched *board.PieceMove
	for _, m := range moves {
		if m.X == tx && m.Y == ty {
			pm := board.PieceMove{
				Located: board.LocatedPiece{X: x, Y: y, Piece: *p},
				Move:    m,
			}
			matched = &pm
			break
		}
	}
	if matched == nil {
		return fmt.Errorf("(%d,%d) is not a legal destination for the piece at (%d,%d)", tx, ty, x, y)
	}

	c.hist.Record(c.b)
	return c.b.Apply(*matched)
}

func (c *controller) cmdAnalyze(args []string) error {
	depth := c.future
	if len(args) > 0 {
		if args[0] == "--future" && len(args) > 1 {
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid --future value %q", args[1])
			}
			depth = d
		} else {
			return fmt.Errorf("usage: analyze [--future N]")
		}
	}

	e := evaluator.New(c.selfTeam)
	moves, err := e.FindNextMoves(c.b, depth)
	if err != nil {
		return err
	}
	for _, sm := range moves {
		if sm.Move == nil {
			fmt.Printf("(empty move) score=%.4f\n", sm.Score)
			continue
		}
		loc := sm.Move.Located
		fmt.Printf("(%d,%d) -> (%d,%d) score=%.4f\n", loc.X, loc.Y, sm.Move.Move.X, sm.Move.Move.Y, sm.Score)
	}
	return nil
}

func (c *controller) cmdScore() error {
	if c.store == nil {
		s, err := storage.OpenDefault()
		if err != nil {
			return err
		}
		c.store = s
	}
	e := evaluator.New(c.selfTeam)
	score, err := e.CachedScore(c.store, c.b)
	if err != nil {
		return err
	}
	fmt.Printf("score=%.4f\n", score)
	return nil
}

func (c *controller) cmdUndo() error {
	prev, ok := c.hist.Undo(c.b)
	if !ok {
		return fmt.Errorf("nothing to undo")
	}
	c.b = prev
	return nil
}

func (c *controller) cmdRedo() error {
	next, ok := c.hist.Redo(c.b)
	if !ok {
		return fmt.Errorf("nothing to redo")
	}
	c.b = next
	return nil
}

func (c *controller) closeStore() {
	if c.store != nil {
		c.store.Close()
	}
}

func parseXY(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected <x> <y>")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y %q", args[1])
	}
	return x, y, nil
}
