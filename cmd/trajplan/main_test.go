package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajplan/wire"
)

func TestRun_Help(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_MissingEndpoints(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-start", "0,0,0"})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_BadNumbers(t *testing.T) {
	for _, args := range [][]string{
		{"-start", "0,zero,0", "-goal", "1,1,1"},
		{"-start", "0,0", "-goal", "1,1,1"},
		{"-start", "0,0,0", "-goal", "1,1"},
	} {
		var exitErr *ExitError
		require.ErrorAs(t, run(context.Background(), &bytes.Buffer{}, args), &exitErr, args)
	}
}

func TestRun_PlansAndArchives(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "plan.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
planner {
  step_budget = 100
}
logging {
  level = "error"
}
`), 0o600))
	archive := filepath.Join(dir, "run.msgpack.zst")

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{
		"-config", cfgPath,
		"-start", "0,0,0,0,0,2",
		"-goal", "10,10,0",
		"-out", archive,
	})
	require.NoError(t, err)

	var res wire.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Equal(t, "SUCCEEDED", res.Status)
	require.Len(t, res.Path, 7)
	require.Equal(t, 13, res.Expanded)

	f, err := os.Open(archive)
	require.NoError(t, err)
	defer f.Close()
	a, err := wire.LoadArchive(f)
	require.NoError(t, err)
	require.Equal(t, res.Status, a.Result.Status)
	require.Equal(t, 10.0, a.Request.Goal.X)
}

func TestRun_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`planner {`), 0o600))

	err := run(context.Background(), &bytes.Buffer{}, []string{"-config", cfgPath, "-start", "0,0,0", "-goal", "1,1,1"})
	require.Error(t, err)
}

func TestRun_CancelledContextAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	require.NoError(t, run(ctx, out, []string{"-start", "0,0,0", "-goal", "100,100,0", "-log-level", "error"}))

	var res wire.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Equal(t, "ABORTED", res.Status)
}
