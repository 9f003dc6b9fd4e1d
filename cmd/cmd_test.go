package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gohelios/InputParameters"
	"github.com/notargets/gohelios/dataio"
	"github.com/notargets/gohelios/plotting"
	"github.com/notargets/gohelios/shockfront"
)

func TestAnalysisParametersFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	file := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
Title: Test Case
DataFile: run.msgpack
Threshold: 1.3
Plots: [density, max_pressure]
Limits:
  densityy: [0, 150]
`), 0o644))

	viper.Set("inputParameters", file)
	ip, err := analysisParameters()
	require.NoError(t, err)
	assert.Equal(t, "run.msgpack", ip.DataFile)
	assert.Equal(t, 1.3, ip.Threshold)
	assert.Equal(t, []string{"density", "max_pressure"}, ip.Plots)
	assert.Equal(t, 11, ip.WindowLength)
	assert.Equal(t, [2]float64{0, 150}, *ip.Limit("densityy"))

	// Set values win over the file
	viper.Set("threshold", 1.5)
	viper.Set("data", "other.yaml")
	ip, err = analysisParameters()
	require.NoError(t, err)
	assert.Equal(t, 1.5, ip.Threshold)
	assert.Equal(t, "other.yaml", ip.DataFile)
}

func TestAnalysisParametersNeedData(t *testing.T) {
	t.Cleanup(viper.Reset)
	_, err := analysisParameters()
	assert.ErrorIs(t, err, errNoDataFile)

	viper.Set("inputParameters", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = analysisParameters()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteTrajectoryCSV(t *testing.T) {
	var (
		buf bytes.Buffer
		tr  = shockfront.Trajectory{
			Time:   []float64{-0.5, 0.5},
			Radius: []float64{0, 2.5},
			Index:  []int{3, 2},
		}
	)
	require.NoError(t, WriteTrajectoryCSV(&buf, tr))
	assert.Equal(t, "time_ns,radius_um,zone_index\n-0.5,0,-1\n0.5,2.5,2\n", buf.String())
}

func TestSodShockTrack(t *testing.T) {
	var (
		dir  = t.TempDir()
		path = filepath.Join(dir, "sod.msgpack")
		buf  bytes.Buffer
	)
	require.NoError(t, runSod(path, 21, 200, 0.3, true))

	ip := InputParameters.NewAnalysisParameters()
	ip.DataFile = path
	ip.ParallelDegree = 4
	tr, err := runShockTrack(context.Background(), ip, &buf)
	require.NoError(t, err)
	assert.Equal(t, 21, tr.Len())
	assert.Equal(t, 0., tr.Radius[0])
	// The shock moves outward from the diaphragm
	assert.Greater(t, tr.Radius[20], 0.5)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 22)
	assert.Equal(t, []string{"time_ns", "radius_um", "zone_index"}, records[0])
	assert.Equal(t, "0", records[1][1])
	assert.Equal(t, "-1", records[1][2])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runShockTrack(ctx, ip, &buf)
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, runSod(filepath.Join(dir, "sod.txt"), 21, 200, 0.3, true), dataio.ErrFormat)
}

func TestRunPlots(t *testing.T) {
	var (
		dir  = t.TempDir()
		data = filepath.Join(dir, "sod.yaml")
		ip   = InputParameters.NewAnalysisParameters()
	)
	require.NoError(t, runSod(data, 15, 60, 0.2, false))
	ip.Title = "sod"
	ip.DataFile = data
	ip.OutputDir = filepath.Join(dir, "plots")
	ip.Plots = []string{"radius", "shocktrack", "max_pressure", "pressure"}
	ip.Limits = map[string][2]float64{"radiusy": {0, 0.5}}

	r := newRenderer(ip, plotting.DefaultStyle())
	r.Options.ShockTrack = true
	h, paths, err := runPlots(ip, r)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	for i, kind := range ip.Plots {
		assert.Equal(t, filepath.Join(ip.OutputDir, "sod_"+kind+".png"), paths[i])
		assert.FileExists(t, paths[i])
	}
	assert.Equal(t, data, h.Name())

	ip.Plots = []string{"vorticity"}
	_, _, err = runPlots(ip, r)
	assert.ErrorIs(t, err, plotting.ErrPlotKind)
}

func TestBindPersistentFlags(t *testing.T) {
	t.Cleanup(viper.Reset)
	cmd := &cobra.Command{Use: "bind"}
	cmd.PersistentFlags().String("level", "warn", "")
	require.NoError(t, bindPersistentFlags(cmd, "level"))
	assert.Equal(t, "warn", viper.GetString("level"))
	require.NoError(t, cmd.PersistentFlags().Set("level", "debug"))
	assert.Equal(t, "debug", viper.GetString("level"))

	err := bindPersistentFlags(cmd, "level", "verbose")
	assert.ErrorIs(t, err, errNoFlag)
	assert.Contains(t, err.Error(), "verbose")
}
