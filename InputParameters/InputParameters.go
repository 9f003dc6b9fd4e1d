package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type AnalysisParameters struct {
	Title          string                `json:"Title"`
	DataFile       string                `json:"DataFile"`
	Threshold      float64               `json:"Threshold"`      // Density ratio a shock must exceed
	ParallelDegree int                   `json:"ParallelDegree"` // 0 uses every CPU
	Smooth         bool                  `json:"Smooth"`
	WindowLength   int                   `json:"WindowLength"`
	PolyOrder      int                   `json:"PolyOrder"`
	OutputDir      string                `json:"OutputDir"`
	Plots          []string              `json:"Plots"`
	Limits         map[string][2]float64 `json:"Limits"` // Axis limits keyed by plot name, "x" or "y" suffix
}

// NewAnalysisParameters returns the defaults, Parse overwrites only the keys
// present in the file.
func NewAnalysisParameters() *AnalysisParameters {
	return &AnalysisParameters{
		Threshold:    1.1,
		Smooth:       true,
		WindowLength: 11,
		PolyOrder:    3,
		OutputDir:    ".",
		Plots:        []string{"radius", "density", "shocktrack"},
	}
}

func (ip *AnalysisParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *AnalysisParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= DataFile\n", ip.DataFile)
	fmt.Printf("%8.5f\t\t= Threshold\n", ip.Threshold)
	fmt.Printf("[%d]\t\t\t= ParallelDegree\n", ip.ParallelDegree)
	fmt.Printf("[%v]\t\t\t= Smooth\n", ip.Smooth)
	fmt.Printf("[%d]\t\t\t= WindowLength\n", ip.WindowLength)
	fmt.Printf("[%d]\t\t\t= PolyOrder\n", ip.PolyOrder)
	fmt.Printf("[%s]\t\t\t= OutputDir\n", ip.OutputDir)
	fmt.Printf("%v\t= Plots\n", ip.Plots)
	keys := make([]string, len(ip.Limits))
	i := 0
	for k := range ip.Limits {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Limits[%s] = %v\n", key, ip.Limits[key])
	}
}

// Limit returns the axis limits stored under key, nil when absent.
func (ip *AnalysisParameters) Limit(key string) *[2]float64 {
	if lim, ok := ip.Limits[key]; ok {
		return &lim
	}
	return nil
}
