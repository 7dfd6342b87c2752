package config

// Raw HCL schema. Optional scalars are pointers so that absence can be told
// apart from zero.

type hclFile struct {
	Planner       *hclPlanner   `hcl:"planner,block"`
	GroundStation *hclLink      `hcl:"ground_station,block"`
	Logging       *hclLogging   `hcl:"logging,block"`
	AltitudeBand  *hclBand      `hcl:"altitude_band,block"`
	Terrain       *hclTerrain   `hcl:"terrain,block"`
	KeepIn        []*hclPolygon `hcl:"keep_in,block"`
	KeepOut       []*hclPolygon `hcl:"keep_out,block"`
}

type hclPlanner struct {
	HeadingOffsets []float64 `hcl:"heading_offsets,optional"`
	VSpeedOffsets  []float64 `hcl:"vspeed_offsets,optional"`
	TimeStep       *float64  `hcl:"dt,optional"`
	Neighborhood   *float64  `hcl:"neighborhood,optional"`
	StepBudget     *int      `hcl:"step_budget,optional"`
	CruiseSpeed    *float64  `hcl:"cruise_speed,optional"`
	Workers        *int      `hcl:"workers,optional"`
	Timeout        *string   `hcl:"timeout,optional"`
}

type hclLink struct {
	PortType   *string `hcl:"port_type,optional"`
	BaudRate   *int    `hcl:"baud_rate,optional"`
	InputPort  *int    `hcl:"input_port,optional"`
	OutputPort *int    `hcl:"output_port,optional"`
	Address    *string `hcl:"address,optional"`
}

type hclLogging struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
	File   *string `hcl:"file,optional"`
}

type hclBand struct {
	Min float64 `hcl:"min"`
	Max float64 `hcl:"max"`
}

type hclTerrain struct {
	SafetyMargin *float64 `hcl:"safety_margin,optional"`
}

type hclPolygon struct {
	Points [][]float64 `hcl:"points"`
}
