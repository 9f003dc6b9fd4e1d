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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gohelios/dataio"
	"github.com/notargets/gohelios/logger"
	"github.com/notargets/gohelios/sod_shock_tube"
)

// SodCmd represents the sod command
var SodCmd = &cobra.Command{
	Use:   "sod",
	Short: "Write the exact Sod shock tube solution as a dataset",
	Long: `
Samples the exact Riemann solution of the Sod shock tube on a uniform mesh and
writes it in the dataset format, one time unit as 1 ns and one length unit as 1 um.
The strong variant lowers the right pressure so the shock is the steepest density
rise and can be tracked.

gohelios sod --nt 101 --nz 400 --strong -o sod.yaml`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSod(viper.GetString("output"), viper.GetInt("nt"), viper.GetInt("nz"),
			viper.GetFloat64("tEnd"), viper.GetBool("strong"))
	},
}

func init() {
	rootCmd.AddCommand(SodCmd)
	SodCmd.Flags().StringP("output", "o", "sod.yaml", "dataset file to write (.yaml, .json or .msgpack)")
	SodCmd.Flags().Int("nt", 51, "number of timesteps")
	SodCmd.Flags().Int("nz", 200, "number of zones")
	SodCmd.Flags().Float64("tEnd", 0.2, "final time in problem units")
	SodCmd.Flags().Bool("strong", false, "use a right pressure of 0.01")
}

func runSod(path string, nt, nz int, tEnd float64, strong bool) (err error) {
	var (
		pr  = sod_shock_tube.NewProblem()
		raw *dataio.RawDataset
	)
	if strong {
		pr = sod_shock_tube.NewStrongProblem()
	}
	src := sod_shock_tube.NewSource(pr, nt, nz, tEnd)
	if raw, err = src.Load(); err != nil {
		return
	}
	if err = dataio.WriteFile(path, raw); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	sol := pr.Solve(tEnd, 0)
	logger.Infow("sod dataset written", "path", path, "source", src.Name(), "shock", sol.X4)
	return
}
