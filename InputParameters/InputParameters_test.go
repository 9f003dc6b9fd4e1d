package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisParameters(t *testing.T) {
	input := []byte(`
Title: "Planar CH target"
DataFile: run42.yaml
Threshold: 1.25
ParallelDegree: 4
Plots:
  - density
  - pressure
Limits:
  densityy: [0, 150]
  densityx: [0.5, 3]
`)
	ip := NewAnalysisParameters()
	require.NoError(t, ip.Parse(input))
	assert.Equal(t, "Planar CH target", ip.Title)
	assert.Equal(t, "run42.yaml", ip.DataFile)
	assert.Equal(t, 1.25, ip.Threshold)
	assert.Equal(t, 4, ip.ParallelDegree)
	assert.Equal(t, []string{"density", "pressure"}, ip.Plots)
	// Absent keys keep their defaults
	assert.True(t, ip.Smooth)
	assert.Equal(t, 11, ip.WindowLength)
	assert.Equal(t, 3, ip.PolyOrder)
	assert.Equal(t, ".", ip.OutputDir)

	require.NotNil(t, ip.Limit("densityy"))
	assert.Equal(t, [2]float64{0, 150}, *ip.Limit("densityy"))
	assert.Nil(t, ip.Limit("pressurey"))
	assert.NotPanics(t, ip.Print)

	assert.Error(t, ip.Parse([]byte("Threshold: [1, 2")))
}
