// Package logging builds the structured loggers used by the trajplan CLI.
//
// Loggers are plain *slog.Logger values. Text or JSON output goes either to a
// caller-supplied writer or, when Config.File is set, to a size-rotated file
// managed by lumberjack.
//
//	log, closeFn, err := logging.New(logging.Config{Level: "debug", File: "plan.slog"}, os.Stderr)
//	if err != nil { ... }
//	defer closeFn()
//	planner, _ := search.NewPlanner(search.WithLogger(log))
package logging
