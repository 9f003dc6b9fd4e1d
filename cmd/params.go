/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gohelios/InputParameters"
)

var errNoDataFile = errors.New("must supply a data file (-F, --data) or DataFile in the parameters file (-I)")

const exampleParameters = `
########################################
Title: "Shot 12"
DataFile: run.yaml
Threshold: 1.1
ParallelDegree: 0 # 0 uses every CPU
Smooth: true
WindowLength: 11
PolyOrder: 3
OutputDir: plots
Plots: [radius, density, shocktrack, max_pressure]
Limits:
  densityy: [0, 150]
########################################
`

// addAnalysisFlags registers the flags that overlay the parameters file.
func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("inputParameters", "I", "", "YAML file of analysis parameters like:\n\t- DataFile\n\t- Threshold\n\t- Plots")
	cmd.Flags().StringP("data", "F", "", "dataset file (.yaml, .json or .msgpack)")
	cmd.Flags().Float64P("threshold", "t", 1.1, "density ratio a jump must exceed to count as the shock")
	cmd.Flags().IntP("parallel", "p", 0, "number of workers for detection, 0 uses every CPU")
}

// analysisParameters starts from the defaults, applies the parameters file
// and then any flag, environment or config value that was set.
func analysisParameters() (ip *InputParameters.AnalysisParameters, err error) {
	ip = InputParameters.NewAnalysisParameters()
	if file := viper.GetString("inputParameters"); file != "" {
		var data []byte
		if data, err = os.ReadFile(file); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("parsing %s: %w", file, err)
			return
		}
	}
	if viper.IsSet("data") {
		ip.DataFile = viper.GetString("data")
	}
	if viper.IsSet("threshold") {
		ip.Threshold = viper.GetFloat64("threshold")
	}
	if viper.IsSet("parallel") {
		ip.ParallelDegree = viper.GetInt("parallel")
	}
	if viper.IsSet("smooth") {
		ip.Smooth = viper.GetBool("smooth")
	}
	if viper.IsSet("window") {
		ip.WindowLength = viper.GetInt("window")
	}
	if viper.IsSet("polyorder") {
		ip.PolyOrder = viper.GetInt("polyorder")
	}
	if viper.IsSet("outputDir") {
		ip.OutputDir = viper.GetString("outputDir")
	}
	if viper.IsSet("plots") {
		ip.Plots = viper.GetStringSlice("plots")
	}
	if len(ip.DataFile) == 0 {
		fmt.Fprintf(os.Stderr, "Example parameters file:%s\n", exampleParameters)
		err = errNoDataFile
	}
	return
}
