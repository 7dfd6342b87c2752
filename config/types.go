package config

import (
	"errors"
	"time"

	"github.com/katalvlaran/trajplan/feasibility"
	"github.com/katalvlaran/trajplan/logging"
	"github.com/katalvlaran/trajplan/search"
)

// Sentinel errors for configuration loading.
var (
	// ErrParse indicates HCL syntax errors.
	ErrParse = errors.New("config: parse failed")
	// ErrDecode indicates HCL that parses but does not match the schema.
	ErrDecode = errors.New("config: decode failed")
	// ErrBadPortType indicates a link port type other than serial or socket.
	ErrBadPortType = errors.New("config: port type must be serial or socket")
	// ErrBadBaudRate indicates a non-positive serial baud rate.
	ErrBadBaudRate = errors.New("config: baud rate must be positive")
	// ErrBadPort indicates a socket port outside 0..65535.
	ErrBadPort = errors.New("config: port must be within 0..65535")
	// ErrBadPoint indicates a polygon vertex that is not an [x, y] pair.
	ErrBadPoint = errors.New("config: polygon points must be [x, y] pairs")
	// ErrBadDuration indicates an unparsable timeout string.
	ErrBadDuration = errors.New("config: invalid duration")
)

// Port types accepted by Link.
const (
	PortSerial = "serial"
	PortSocket = "socket"
)

// Link describes the ground-station connection. It is carried as
// configuration only; the planner never opens it.
type Link struct {
	PortType   string
	BaudRate   int
	InputPort  int
	OutputPort int
	Address    string
}

// DefaultLink returns a 57600 baud serial link on /dev/ttyUSB0.
func DefaultLink() Link {
	return Link{
		PortType: PortSerial,
		BaudRate: 57600,
		Address:  "/dev/ttyUSB0",
	}
}

// Planner mirrors the tunables of search.Options that can be set from a file.
type Planner struct {
	HeadingOffsets []float64
	VSpeedOffsets  []float64
	TimeStep       float64
	Neighborhood   float64
	StepBudget     int
	CruiseSpeed    float64
	Workers        int
	Timeout        time.Duration
}

// Config is a fully decoded and defaulted configuration file.
type Config struct {
	Planner Planner
	Link    Link
	Logging logging.Config

	// Feasibility constraints; nil or empty when absent.
	Band    *feasibility.AltitudeBand
	Terrain *feasibility.Terrain
	KeepIn  []feasibility.Polygon
	KeepOut []feasibility.Polygon
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	o := search.DefaultOptions()
	return &Config{
		Planner: Planner{
			HeadingOffsets: o.HeadingOffsets,
			VSpeedOffsets:  o.VSpeedOffsets,
			TimeStep:       o.TimeStep,
			Neighborhood:   o.Neighborhood,
			StepBudget:     o.StepBudget,
			CruiseSpeed:    o.CruiseSpeed,
			Workers:        o.Workers,
			Timeout:        o.Timeout,
		},
		Link:    DefaultLink(),
		Logging: logging.DefaultConfig(),
	}
}
