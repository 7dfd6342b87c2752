package vehicle

// State is a snapshot of the vehicle at one instant.
// Values are copied, never shared, which keeps every State immutable once built.
type State struct {
	X     float64 `json:"x" msgpack:"x"`         // east, meters
	Y     float64 `json:"y" msgpack:"y"`         // north, meters
	Z     float64 `json:"z" msgpack:"z"`         // up, meters
	Psi   float64 `json:"psi" msgpack:"psi"`     // heading, degrees (not normalized)
	VS    float64 `json:"vs" msgpack:"vs"`       // vertical speed, m/s
	Speed float64 `json:"speed" msgpack:"speed"` // forward speed, m/s

	// Derived velocity cache.
	VX float64 `json:"vx" msgpack:"vx"`
	VY float64 `json:"vy" msgpack:"vy"`
	VZ float64 `json:"vz" msgpack:"vz"`
}
