package search

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/trajplan/vehicle"
)

// Sentinel errors returned by the search package.
var (
	// ErrNotFound indicates an index lookup that was never registered in the Graph.
	ErrNotFound = errors.New("search: node index not registered")

	// ErrBrokenChain indicates that a parent walk could not reach the root,
	// either because a parent is missing or because the walk revisits nodes.
	ErrBrokenChain = errors.New("search: parent chain does not reach the root")

	// ErrDuplicateIndex indicates an attempt to register a second node under an
	// index that is already stored.
	ErrDuplicateIndex = errors.New("search: node index already registered")

	// ErrNilNode indicates a nil *Node passed where a node is required.
	ErrNilNode = errors.New("search: node is nil")

	// ErrEmptyHeadingGrid indicates that no heading offsets were configured.
	ErrEmptyHeadingGrid = errors.New("search: heading offsets must not be empty")

	// ErrEmptyVSpeedGrid indicates that no vertical-speed offsets were configured.
	ErrEmptyVSpeedGrid = errors.New("search: vertical-speed offsets must not be empty")

	// ErrBadTimeStep indicates a non-positive or non-finite dt.
	ErrBadTimeStep = errors.New("search: time step must be positive")

	// ErrBadNeighborhood indicates a non-positive goal acceptance radius.
	ErrBadNeighborhood = errors.New("search: neighborhood radius must be positive")

	// ErrBadStepBudget indicates a non-positive expansion budget.
	ErrBadStepBudget = errors.New("search: step budget must be positive")

	// ErrBadCruiseSpeed indicates a negative or non-finite nominal speed.
	ErrBadCruiseSpeed = errors.New("search: cruise speed must be non-negative")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("search: workers must be at least 1")

	// ErrBadTimeout indicates a negative timeout.
	ErrBadTimeout = errors.New("search: timeout must be non-negative")
)

// Defaults applied by DefaultOptions.
const (
	DefaultNeighborhood = 5.0
	DefaultCruiseSpeed  = 2.0
	DefaultTimeStep     = 1.0
	DefaultStepBudget   = 10000
)

// Status is the planner state machine:
//
//	Ready → Searching → {Succeeded, Exhausted, Aborted}
type Status int

const (
	StatusReady Status = iota
	StatusSearching
	StatusSucceeded
	StatusExhausted
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "READY"
	case StatusSearching:
		return "SEARCHING"
	case StatusSucceeded:
		return "SUCCEEDED"
	case StatusExhausted:
		return "EXHAUSTED"
	case StatusAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether s is one of the final states.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusExhausted || s == StatusAborted
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(str string) (Status, bool) {
	for s := StatusReady; s <= StatusAborted; s++ {
		if s.String() == str {
			return s, true
		}
	}
	return StatusReady, false
}

// Oracle decides whether a kinematically generated state may enter the
// search (terrain, obstacles, airspace). It is consulted between generation
// and registration; a nil Oracle accepts every state.
type Oracle interface {
	Feasible(s vehicle.State) bool
}

// OracleFunc adapts a plain function to Oracle.
type OracleFunc func(s vehicle.State) bool

// Feasible calls f(s).
func (f OracleFunc) Feasible(s vehicle.State) bool { return f(s) }

// Result is the outcome of one planning run.
type Result struct {
	Status   Status          // terminal status (non-terminal only when an error is returned)
	Path     []vehicle.State // root→goal states, empty unless StatusSucceeded
	Cost     float64         // G of the goal node when StatusSucceeded
	Expanded int             // number of node expansions performed
	Nodes    int             // number of nodes registered in the run's Graph
	Rejected int             // successors refused by the Oracle
}

// Options configures a Planner.
//
// HeadingOffsets – heading deltas in degrees tried from every node.
// VSpeedOffsets  – vertical speeds (m/s) assigned to successors.
// TimeStep       – dt in seconds for one maneuver step.
// Neighborhood   – goal acceptance radius (horizontal, strict <).
// StepBudget     – maximum number of expansions before EXHAUSTED.
// CruiseSpeed    – fixed forward speed given to every successor.
// Timeout        – wall-clock budget per run; 0 disables it.
// Workers        – goroutines used to compute successor states.
// Oracle         – optional feasibility check.
// Logger         – structured logger; discards by default.
type Options struct {
	HeadingOffsets []float64
	VSpeedOffsets  []float64
	TimeStep       float64
	Neighborhood   float64
	StepBudget     int
	CruiseSpeed    float64
	Timeout        time.Duration
	Workers        int
	Oracle         Oracle
	Logger         *slog.Logger
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// WithHeadingOffsets sets the heading grid (degrees). The slice is copied.
func WithHeadingOffsets(offsets ...float64) Option {
	return func(o *Options) {
		o.HeadingOffsets = append([]float64(nil), offsets...)
	}
}

// WithVSpeedOffsets sets the vertical-speed grid (m/s). The slice is copied.
func WithVSpeedOffsets(offsets ...float64) Option {
	return func(o *Options) {
		o.VSpeedOffsets = append([]float64(nil), offsets...)
	}
}

// WithTimeStep sets dt in seconds.
func WithTimeStep(dt float64) Option {
	return func(o *Options) { o.TimeStep = dt }
}

// WithNeighborhood sets the goal acceptance radius.
func WithNeighborhood(radius float64) Option {
	return func(o *Options) { o.Neighborhood = radius }
}

// WithStepBudget caps the number of expansions per run.
func WithStepBudget(steps int) Option {
	return func(o *Options) { o.StepBudget = steps }
}

// WithCruiseSpeed sets the nominal speed assigned to every successor.
func WithCruiseSpeed(speed float64) Option {
	return func(o *Options) { o.CruiseSpeed = speed }
}

// WithTimeout bounds the wall-clock time of a run. Reaching it ends the run
// as StatusExhausted, like the step budget.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithWorkers sets how many goroutines compute successor states.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithOracle installs a feasibility oracle.
func WithOracle(oracle Oracle) Option {
	return func(o *Options) { o.Oracle = oracle }
}

// WithLogger sets the structured logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//
//   - HeadingOffsets: {-10, 0, 10}
//   - VSpeedOffsets:  {0}
//   - TimeStep:       1 s
//   - Neighborhood:   5
//   - StepBudget:     10000
//   - CruiseSpeed:    2 m/s
//   - Timeout:        none
//   - Workers:        1
//   - Oracle:         nil (accept all)
//   - Logger:         discard
func DefaultOptions() Options {
	return Options{
		HeadingOffsets: []float64{-10, 0, 10},
		VSpeedOffsets:  []float64{0},
		TimeStep:       DefaultTimeStep,
		Neighborhood:   DefaultNeighborhood,
		StepBudget:     DefaultStepBudget,
		CruiseSpeed:    DefaultCruiseSpeed,
		Workers:        1,
		Logger:         slog.New(slog.DiscardHandler),
	}
}
