package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/trajplan/feasibility"
	"github.com/katalvlaran/trajplan/search"
)

// Load reads and decodes the HCL file at path.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source. filename is used only in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, filename, diags)
	}

	cfg := Default()
	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(cfg), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags)
	}
	if err := cfg.apply(&raw); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}

	return cfg, nil
}

// evalContext exposes the defaults of cfg as the `defaults` object.
func evalContext(cfg *Config) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"dt":            cty.NumberFloatVal(cfg.Planner.TimeStep),
				"neighborhood":  cty.NumberFloatVal(cfg.Planner.Neighborhood),
				"step_budget":   cty.NumberIntVal(int64(cfg.Planner.StepBudget)),
				"cruise_speed":  cty.NumberFloatVal(cfg.Planner.CruiseSpeed),
				"baud_rate":     cty.NumberIntVal(int64(cfg.Link.BaudRate)),
				"safety_margin": cty.NumberFloatVal(feasibility.DefaultTerrain().SafetyMargin),
			}),
		},
	}
}

func (c *Config) apply(raw *hclFile) error {
	if p := raw.Planner; p != nil {
		if p.HeadingOffsets != nil {
			c.Planner.HeadingOffsets = p.HeadingOffsets
		}
		if p.VSpeedOffsets != nil {
			c.Planner.VSpeedOffsets = p.VSpeedOffsets
		}
		setIf(&c.Planner.TimeStep, p.TimeStep)
		setIf(&c.Planner.Neighborhood, p.Neighborhood)
		setIf(&c.Planner.StepBudget, p.StepBudget)
		setIf(&c.Planner.CruiseSpeed, p.CruiseSpeed)
		setIf(&c.Planner.Workers, p.Workers)
		if p.Timeout != nil {
			d, err := time.ParseDuration(*p.Timeout)
			if err != nil {
				return fmt.Errorf("%w: timeout %q", ErrBadDuration, *p.Timeout)
			}
			c.Planner.Timeout = d
		}
	}

	if l := raw.GroundStation; l != nil {
		setIf(&c.Link.PortType, l.PortType)
		setIf(&c.Link.BaudRate, l.BaudRate)
		setIf(&c.Link.InputPort, l.InputPort)
		setIf(&c.Link.OutputPort, l.OutputPort)
		setIf(&c.Link.Address, l.Address)
	}

	if l := raw.Logging; l != nil {
		setIf(&c.Logging.Level, l.Level)
		setIf(&c.Logging.Format, l.Format)
		setIf(&c.Logging.File, l.File)
	}

	if b := raw.AltitudeBand; b != nil {
		band, err := feasibility.NewAltitudeBand(b.Min, b.Max)
		if err != nil {
			return err
		}
		c.Band = &band
	}

	if t := raw.Terrain; t != nil {
		terrain := feasibility.DefaultTerrain()
		setIf(&terrain.SafetyMargin, t.SafetyMargin)
		c.Terrain = &terrain
	}

	var err error
	if c.KeepIn, err = polygons(raw.KeepIn); err != nil {
		return fmt.Errorf("keep_in: %w", err)
	}
	if c.KeepOut, err = polygons(raw.KeepOut); err != nil {
		return fmt.Errorf("keep_out: %w", err)
	}

	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func polygons(blocks []*hclPolygon) ([]feasibility.Polygon, error) {
	if len(blocks) == 0 {
		return nil, nil
	}
	out := make([]feasibility.Polygon, 0, len(blocks))
	for i, b := range blocks {
		p := make(feasibility.Polygon, len(b.Points))
		for j, pt := range b.Points {
			if len(pt) != 2 {
				return nil, fmt.Errorf("%w: block %d point %d has %d coordinates", ErrBadPoint, i, j, len(pt))
			}
			p[j] = [2]float64{pt[0], pt[1]}
		}
		out = append(out, p)
	}
	return out, nil
}

// Validate checks the link, logging and planner settings and the
// feasibility polygons.
func (c *Config) Validate() error {
	if err := c.Link.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if _, err := feasibility.NewGeofence(c.KeepIn, c.KeepOut); err != nil {
		return err
	}
	o := search.DefaultOptions()
	for _, opt := range c.Options() {
		opt(&o)
	}
	return o.Validate()
}

// Validate checks the port type, baud rate and ports.
func (l Link) Validate() error {
	switch l.PortType {
	case PortSerial:
		if l.BaudRate <= 0 {
			return fmt.Errorf("%w: %d", ErrBadBaudRate, l.BaudRate)
		}
	case PortSocket:
	default:
		return fmt.Errorf("%w: %q", ErrBadPortType, l.PortType)
	}
	for _, p := range []int{l.InputPort, l.OutputPort} {
		if p < 0 || p > 65535 {
			return fmt.Errorf("%w: %d", ErrBadPort, p)
		}
	}
	return nil
}

// Oracle combines the configured constraints into one search.Oracle, or
// returns nil when none are configured.
func (c *Config) Oracle() search.Oracle {
	var chain feasibility.Chain
	if c.Band != nil {
		chain = append(chain, *c.Band)
	}
	if c.Terrain != nil {
		chain = append(chain, *c.Terrain)
	}
	if len(c.KeepIn) > 0 || len(c.KeepOut) > 0 {
		// polygons were validated by Validate
		fence := &feasibility.Geofence{KeepIn: c.KeepIn, KeepOut: c.KeepOut}
		chain = append(chain, fence)
	}
	if len(chain) == 0 {
		return nil
	}
	return chain
}

// Options converts the planner block and feasibility constraints into
// search options.
func (c *Config) Options() []search.Option {
	p := c.Planner
	return []search.Option{
		search.WithHeadingOffsets(p.HeadingOffsets...),
		search.WithVSpeedOffsets(p.VSpeedOffsets...),
		search.WithTimeStep(p.TimeStep),
		search.WithNeighborhood(p.Neighborhood),
		search.WithStepBudget(p.StepBudget),
		search.WithCruiseSpeed(p.CruiseSpeed),
		search.WithWorkers(p.Workers),
		search.WithTimeout(p.Timeout),
		search.WithOracle(c.Oracle()),
	}
}
