// Command roadnav loads a campus road network, builds its graph, and
// answers fewest-hop route queries interactively.
//
// Input is two node ids per line ("gate lab"); the answer is printed as
// step-by-step directions and written as an SVG overlay. Unknown ids
// and unreachable destinations are messages, not failures: the prompt
// just asks again.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"roadnav/config"
	"roadnav/core"
	"roadnav/graph"
	"roadnav/render"
	"roadnav/route"
	"roadnav/storage"
)

// app binds the immutable registry and graph behind the prompt. Every
// query goes through plan(), a plain request/response function usable
// from any front end.
type app struct {
	cfg *config.Config
	log *slog.Logger
	reg *core.Registry
	g   *graph.Graph
}

// journey is the typed outcome of one successful route query.
type journey struct {
	Path  []string
	Steps []core.NodeRecord // one record per path id, in order
}

// plan answers one (start, end) query. route's sentinel errors pass
// through so the caller can distinguish unknown ids from no-path.
func (a *app) plan(start, end string) (journey, error) {
	path, err := route.ShortestPath(a.g, start, end)
	if err != nil {
		return journey{}, err
	}
	j := journey{Path: path, Steps: make([]core.NodeRecord, 0, len(path))}
	for _, id := range path {
		rec, err := a.reg.Lookup(id)
		if err != nil {
			return journey{}, err
		}
		j.Steps = append(j.Steps, rec)
	}

	return j, nil
}

// loadRecords reads node records from the configured source.
func loadRecords(cfg *config.Config) ([]core.NodeRecord, *storage.LoadReport, error) {
	switch cfg.Source {
	case config.SourceCSV, config.SourceYAML:
		f, err := os.Open(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		if cfg.Source == config.SourceCSV {
			return storage.LoadCSV(f)
		}

		return storage.LoadYAML(f)
	case config.SourceSQLite:
		src, err := storage.OpenSQLite(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		defer src.Close()

		return src.Load(context.Background())
	default:
		return nil, nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// renderRoute writes the full map with the journey highlighted.
func (a *app) renderRoute(j journey) error {
	f, err := os.Create(a.cfg.RenderPath)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, err := render.NewContext(f, 1024, 768)
	if err != nil {
		return err
	}
	if err = ctx.DrawNetwork(a.reg, a.g); err != nil {
		return err
	}
	if err = ctx.DrawRoute(a.reg, j.Path); err != nil {
		return err
	}

	return ctx.Close()
}

// execute handles one prompt line.
func (a *app) execute(line string) {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		return
	case len(fields) == 1 && (fields[0] == "exit" || fields[0] == "quit"):
		fmt.Println("Bye!")
		os.Exit(0)
	case len(fields) != 2:
		fmt.Println("Enter exactly two node ids: START END (or `exit`).")
		return
	}

	j, err := a.plan(fields[0], fields[1])
	switch {
	case errors.Is(err, route.ErrUnknownNode):
		fmt.Printf("%v — check the id and try again.\n", err)
		return
	case errors.Is(err, route.ErrNoPath):
		fmt.Printf("No continuous route between %q and %q: the map is split there.\n", fields[0], fields[1])
		return
	case err != nil:
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Route found: %d hop(s).\n", route.Distance(j.Path))
	for i, rec := range j.Steps {
		fmt.Printf("  step %d: %s (%.2f, %.2f)\n", i+1, rec.ID, rec.X, rec.Y)
	}
	if err = a.renderRoute(j); err != nil {
		a.log.Error("render failed", "path", a.cfg.RenderPath, "err", err)
		return
	}
	fmt.Println("Map written to", a.cfg.RenderPath)
}

// completer suggests known node ids for either endpoint.
func (a *app) completer(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if word == "" {
		return nil
	}
	suggestions := make([]prompt.Suggest, 0, a.reg.Len())
	for _, rec := range a.reg.All() {
		suggestions = append(suggestions, prompt.Suggest{
			Text:        rec.ID,
			Description: fmt.Sprintf("(%.2f, %.2f)", rec.X, rec.Y),
		})
	}

	return prompt.FilterHasPrefix(suggestions, word, true)
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg, cfgPath, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(log)
	if cfgPath != "" {
		log.Info("config loaded", "path", cfgPath)
	}

	records, report, err := loadRecords(cfg)
	if err != nil {
		log.Error("load failed", "source", cfg.Source, "path", cfg.DataPath, "err", err)
		os.Exit(1)
	}
	for _, bad := range report.Skipped {
		log.Warn("skipped malformed record", "row", bad.Row, "reason", bad.Reason)
	}

	reg, err := core.NewRegistry(records)
	if err != nil {
		// ambiguous identity cannot be repaired, unlike a bad row
		log.Error("registry rejected input", "err", err)
		os.Exit(1)
	}

	g, buildReport, err := graph.Build(reg, graph.WithLogger(log))
	if err != nil {
		log.Error("graph build failed", "err", err)
		os.Exit(1)
	}
	log.Info("network ready",
		"nodes", g.Order(), "edges", g.Size(),
		"dangling", len(buildReport.Dangling), "self_loops", len(buildReport.SelfLoops))

	a := &app{cfg: cfg, log: log, reg: reg, g: g}
	fmt.Printf("Loaded %d nodes, %d road segments. Enter START END (Tab completes ids).\n", g.Order(), g.Size())
	p := prompt.New(
		a.execute,
		a.completer,
		prompt.OptionTitle("roadnav"),
		prompt.OptionPrefix("roadnav> "),
		prompt.OptionPrefixTextColor(prompt.Cyan),
	)
	p.Run()
}
