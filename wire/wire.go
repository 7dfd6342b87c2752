package wire

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/trajplan/search"
	"github.com/katalvlaran/trajplan/vehicle"
)

// ErrBadStatus indicates a status name that search.ParseStatus does not know.
var ErrBadStatus = errors.New("wire: unknown status")

// Request asks for a path from Start into the neighborhood of Goal.
type Request struct {
	Start vehicle.State `json:"start" msgpack:"start"`
	Goal  vehicle.State `json:"goal" msgpack:"goal"`
}

// Result is search.Result with the status spelled out.
type Result struct {
	Status   string          `json:"status" msgpack:"status"`
	Path     []vehicle.State `json:"path" msgpack:"path"`
	Cost     float64         `json:"cost" msgpack:"cost"`
	Expanded int             `json:"expanded" msgpack:"expanded"`
	Nodes    int             `json:"nodes" msgpack:"nodes"`
	Rejected int             `json:"rejected" msgpack:"rejected"`
}

// FromResult converts a planner result.
func FromResult(r search.Result) Result {
	return Result{
		Status:   r.Status.String(),
		Path:     r.Path,
		Cost:     r.Cost,
		Expanded: r.Expanded,
		Nodes:    r.Nodes,
		Rejected: r.Rejected,
	}
}

// SearchResult converts r back into a search.Result.
func (r Result) SearchResult() (search.Result, error) {
	st, ok := search.ParseStatus(r.Status)
	if !ok {
		return search.Result{}, fmt.Errorf("%w: %q", ErrBadStatus, r.Status)
	}
	return search.Result{
		Status:   st,
		Path:     r.Path,
		Cost:     r.Cost,
		Expanded: r.Expanded,
		Nodes:    r.Nodes,
		Rejected: r.Rejected,
	}, nil
}

// Marshal encodes v as msgpack.
func Marshal(v any) ([]byte, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("wire: encode %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal decodes msgpack data into v.
func Unmarshal(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("wire: decode %T: %w", v, err)
	}
	return nil
}

// Archive is one planning run as stored on disk.
type Archive struct {
	Created time.Time `msgpack:"created"`
	Request Request   `msgpack:"request"`
	Result  Result    `msgpack:"result"`
}

// NewArchive records req and the planner's answer to it.
func NewArchive(req Request, res search.Result) *Archive {
	return &Archive{
		Created: time.Now().UTC(),
		Request: req,
		Result:  FromResult(res),
	}
}

// Save writes the archive to w (msgpack + zstd compression).
func (a *Archive) Save(w io.Writer) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	defer zw.Close()

	if err := msgpack.NewEncoder(zw).Encode(a); err != nil {
		return fmt.Errorf("failed to encode archive: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}

	return nil
}

// LoadArchive reads an archive written by Save.
func LoadArchive(r io.Reader) (*Archive, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var a Archive
	if err := msgpack.NewDecoder(zr).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode archive: %w", err)
	}

	return &a, nil
}
