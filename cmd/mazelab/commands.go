package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mazelab/astar"
	"github.com/katalvlaran/mazelab/bfs"
	"github.com/katalvlaran/mazelab/dijkstra"
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/mazegen"
	"github.com/katalvlaran/mazelab/pursuit"
	"github.com/katalvlaran/mazelab/sandbox"
	"github.com/katalvlaran/mazelab/search"
)

// maze loads the grid from path, or generates one from the config when path is empty.
func (e *env) maze(path string) (*grid.Grid, error) {
	if path != "" {
		g, err := loadGrid(path)
		if err != nil {
			return nil, err
		}
		e.logger.Debug("maze loaded", slog.String("path", path), slog.Int("width", g.Width), slog.Int("height", g.Height))
		return g, nil
	}
	cfg := mazegen.Config{Width: e.cfg.Width, Height: e.cfg.Height, Seed: e.cfg.Seed}
	res, err := mazegen.Generate(cfg, mazegen.WithTrace(false))
	if err != nil {
		return nil, err
	}
	e.logger.Debug("maze generated",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int64("seed", cfg.Seed),
		slog.Int("knockdowns", res.Knockdowns))
	return res.Grid, nil
}

// loadGrid reads a binary snapshot, falling back to the text form.
func loadGrid(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := grid.Decode(data)
	if err == nil {
		return g, nil
	}
	if errors.Is(err, grid.ErrDecode) {
		if tg, perr := grid.Parse(string(data)); perr == nil {
			return tg, nil
		}
	}
	return nil, fmt.Errorf("load %s: %w", path, err)
}

func cmdGenerate(e *env, args []string) error {
	fs := e.flags("generate")
	if err := e.parse(fs, args); err != nil {
		return err
	}
	g, err := e.maze("")
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(e.stdout, g)
	return err
}

func cmdShow(e *env, args []string) error {
	fs := e.flags("show")
	in := fs.String("in", "", "maze file, binary or text")
	if err := e.parse(fs, args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("%w: -in is required", errUsage)
	}
	g, err := e.maze(*in)
	if err != nil {
		return err
	}
	fmt.Fprint(e.stdout, g)
	fmt.Fprintf(e.stdout, "size=%dx%d open=%d components=%d start=%s exit=%s\n",
		g.Width, g.Height, g.OpenCount(), len(g.Components()), g.Start(), g.Exit())
	return nil
}

func cmdExport(e *env, args []string) error {
	fs := e.flags("export")
	out := fs.String("out", "", "output file")
	in := fs.String("in", "", "maze to convert instead of generating one")
	compress := fs.Bool("zstd", true, "compress the snapshot with zstd")
	if err := e.parse(fs, args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("%w: -out is required", errUsage)
	}
	g, err := e.maze(*in)
	if err != nil {
		return err
	}
	c := grid.CompressionNone
	if *compress {
		c = grid.CompressionZstd
	}
	data, err := grid.Encode(g, c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return err
	}
	e.logger.Info("maze exported", slog.String("path", *out), slog.Int("bytes", len(data)), slog.Bool("zstd", *compress))
	return nil
}

// engineByName maps -algo values onto engines.
func engineByName(name string) (search.Engine, error) {
	switch strings.ToLower(name) {
	case bfs.Name:
		return bfs.Engine(), nil
	case dijkstra.Name:
		return dijkstra.Engine(), nil
	case astar.Name, "a*":
		return astar.Engine(), nil
	}
	return nil, fmt.Errorf("%w: unknown algorithm %q", errUsage, name)
}

func cmdSolve(e *env, args []string) error {
	fs := e.flags("solve")
	algo := fs.String("algo", bfs.Name, "bfs, dijkstra or astar")
	in := fs.String("in", "", "maze file; generated when empty")
	if err := e.parse(fs, args); err != nil {
		return err
	}
	eng, err := engineByName(*algo)
	if err != nil {
		return err
	}
	g, err := e.maze(*in)
	if err != nil {
		return err
	}

	began := time.Now()
	out, err := eng.Solve(g, g.Start(), g.Exit())
	if err != nil {
		return err
	}
	e.logger.Debug("solved", slog.String("algo", eng.Name()), slog.Duration("duration", time.Since(began)))

	fmt.Fprint(e.stdout, render(g, out.Path))
	fmt.Fprintf(e.stdout, "algo=%s state=%s length=%d expanded=%d visited=%d\n",
		eng.Name(), out.State, len(out.Path), out.Steps, out.Visited)
	return nil
}

func cmdCompare(e *env, args []string) error {
	fs := e.flags("compare")
	in := fs.String("in", "", "maze file; generated when empty")
	showMetrics := fs.Bool("metrics", false, "print the collected metric families")
	if err := e.parse(fs, args); err != nil {
		return err
	}
	g, err := e.maze(*in)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m, err := sandbox.NewMetrics(reg)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := sandbox.New(sandbox.WithLogger(e.logger), sandbox.WithMetrics(m)).Compare(ctx, g, g.Start(), g.Exit())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENGINE\tSTATE\tLENGTH\tEXPANDED\tVISITED\tDURATION")
	for _, en := range rep.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", en.Engine, en.State, en.PathLength(), en.Steps, en.Visited, en.Duration.Round(time.Microsecond))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "run=%s consistent=%t\n", rep.RunID, rep.Consistent())

	if *showMetrics {
		families, err := reg.Gather()
		if err != nil {
			return err
		}
		for _, mf := range families {
			fmt.Fprintf(e.stdout, "%s series=%d\n", mf.GetName(), len(mf.GetMetric()))
		}
	}
	return nil
}

// moveKeys maps w/a/s/d and the vi keys h/j/k/l onto directions.
var moveKeys = map[rune]grid.Direction{
	'w': grid.Up, 'k': grid.Up,
	'd': grid.Right, 'l': grid.Right,
	's': grid.Down, 'j': grid.Down,
	'a': grid.Left, 'h': grid.Left,
}

func cmdPlay(e *env, args []string) error {
	fs := e.flags("play")
	fs.StringVar(&e.cfg.Difficulty, "difficulty", e.cfg.Difficulty, "very-easy, easy, medium or hard")
	in := fs.String("in", "", "maze file; generated when empty")
	moves := fs.String("moves", "", "moves to apply; read from stdin when empty")
	if err := e.parse(fs, args); err != nil {
		return err
	}
	d, err := pursuit.ParseDifficulty(e.cfg.Difficulty)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	g, err := e.maze(*in)
	if err != nil {
		return err
	}
	game, err := pursuit.NewGame(g, d)
	if err != nil {
		return err
	}
	log := e.logger.With(slog.String("game_id", game.ID.String()), slog.String("difficulty", d.String()))
	log.Info("game started")

	src := *moves
	if src == "" {
		var b strings.Builder
		sc := bufio.NewScanner(e.stdin)
		for sc.Scan() {
			b.WriteString(sc.Text())
		}
		if err := sc.Err(); err != nil {
			return err
		}
		src = b.String()
	}

	began := time.Now()
	st := game.Status()
	for _, r := range strings.ToLower(src) {
		dir, ok := moveKeys[r]
		if !ok {
			continue
		}
		st, err = game.MovePlayer(dir)
		if errors.Is(err, pursuit.ErrBlocked) {
			log.Debug("move blocked", slog.String("direction", dir.String()))
			continue
		}
		if err != nil {
			return err
		}
		if st != pursuit.Playing {
			break
		}
	}

	entry := game.Entry(time.Since(began), time.Now())
	stats := pursuit.NewStats()
	if st != pursuit.Playing {
		stats.Record(entry)
	}
	log.Info("game over", slog.String("status", st.String()), slog.Int("steps", entry.Steps), slog.Int("score", entry.Score))

	fmt.Fprint(e.stdout, renderGame(game))
	fmt.Fprintf(e.stdout, "status=%s steps=%d score=%d enemy_in=%d\n", st, entry.Steps, entry.Score, game.EnemyIn())
	sum := stats.Summary()
	fmt.Fprintf(e.stdout, "games=%d wins=%d losses=%d win_rate=%.1f best_score=%d\n",
		sum.Total, sum.Wins, sum.Losses, sum.WinRate, sum.BestScore)
	return nil
}

func cmdInfo(e *env, args []string) error {
	fs := e.flags("info")
	if err := e.parse(fs, args); err != nil {
		return err
	}
	infos := []search.AlgorithmInfo{mazegen.Info(), bfs.Info(), dijkstra.Info(), astar.Info()}
	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(e.stdout)
		}
		fmt.Fprintf(e.stdout, "%s\n  time: %s  space: %s\n  %s\n", info.Name, info.TimeComplexity, info.SpaceComplexity, info.Description)
		if info.Formula != "" {
			fmt.Fprintf(e.stdout, "  formula: %s\n", info.Formula)
		}
		if info.Heuristic != "" {
			fmt.Fprintf(e.stdout, "  heuristic: %s\n", info.Heuristic)
		}
		for _, a := range info.Advantages {
			fmt.Fprintf(e.stdout, "  + %s\n", a)
		}
		for _, d := range info.Disadvantages {
			fmt.Fprintf(e.stdout, "  - %s\n", d)
		}
	}
	return nil
}
