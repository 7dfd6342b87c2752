// Command trajplan plans a heading/vertical-speed trajectory between two
// points and prints the result as JSON.
//
//	trajplan -config plan.hcl -start 0,0,100,0,0,2 -goal 500,800,100 -out run.msgpack.zst
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/katalvlaran/trajplan/config"
	"github.com/katalvlaran/trajplan/logging"
	"github.com/katalvlaran/trajplan/search"
	"github.com/katalvlaran/trajplan/vehicle"
	"github.com/katalvlaran/trajplan/wire"
)

// ExitError carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, plans once and writes the JSON result to outW. Logs go to
// stderr unless the config names a log file.
func run(ctx context.Context, outW io.Writer, args []string) error {
	fs := flag.NewFlagSet("trajplan", flag.ContinueOnError)
	fs.SetOutput(outW)
	fs.Usage = func() {
		fmt.Fprint(outW, `
trajplan - A* trajectory planner over a heading × vertical-speed maneuver grid.

Usage:
  trajplan [options] -start X,Y,Z[,PSI,VS,SPEED] -goal X,Y,Z

Options:
`)
		fs.PrintDefaults()
	}

	configFlag := fs.String("config", "", "Path to an HCL configuration file.")
	startFlag := fs.String("start", "", "Start state: x,y,z[,psi,vs,speed].")
	goalFlag := fs.String("goal", "", "Goal position: x,y,z.")
	outFlag := fs.String("out", "", "Write a msgpack+zstd archive of the run to this path.")
	logLevelFlag := fs.String("log-level", "", "Override the logging level: debug, info, warn or error.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if *startFlag == "" || *goalFlag == "" {
		fs.Usage()
		return &ExitError{Code: 2, Message: "both -start and -goal are required"}
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}
	if *logLevelFlag != "" {
		cfg.Logging.Level = *logLevelFlag
	}

	log, closeLog, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	defer closeLog()

	start, err := parseStart(*startFlag, cfg.Planner.CruiseSpeed)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	goal, err := parseGoal(*goalFlag)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	planner, err := search.NewPlanner(append(cfg.Options(), search.WithLogger(log))...)
	if err != nil {
		return err
	}

	log.Info("planning", slog.String("start", start.String()), slog.String("goal", goal.String()))
	res, err := planner.Plan(ctx, start, goal)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}
	log.Info("planned",
		slog.String("status", res.Status.String()),
		slog.Int("expanded", res.Expanded),
		slog.Int("path", len(res.Path)))

	if *outFlag != "" {
		if err := saveArchive(*outFlag, wire.NewArchive(wire.Request{Start: start, Goal: goal}, res)); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(outW)
	enc.SetIndent("", "  ")
	return enc.Encode(wire.FromResult(res))
}

func saveArchive(path string, a *wire.Archive) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", p, s)
		}
		out[i] = v
	}
	return out, nil
}

// parseStart accepts x,y,z or x,y,z,psi,vs,speed. The short form flies north
// level at speed.
func parseStart(s string, speed float64) (vehicle.State, error) {
	v, err := parseFloats(s)
	if err != nil {
		return vehicle.State{}, err
	}
	switch len(v) {
	case 3:
		return vehicle.New(v[0], v[1], v[2], 0, 0, speed), nil
	case 6:
		return vehicle.New(v[0], v[1], v[2], v[3], v[4], v[5]), nil
	default:
		return vehicle.State{}, fmt.Errorf("start needs 3 or 6 values, got %d", len(v))
	}
}

func parseGoal(s string) (vehicle.State, error) {
	v, err := parseFloats(s)
	if err != nil {
		return vehicle.State{}, err
	}
	if len(v) != 3 {
		return vehicle.State{}, fmt.Errorf("goal needs 3 values, got %d", len(v))
	}
	return vehicle.At(v[0], v[1], v[2]), nil
}
