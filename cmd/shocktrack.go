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
	"context"
	"encoding/csv"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gohelios/InputParameters"
	"github.com/notargets/gohelios/dataio"
	"github.com/notargets/gohelios/logger"
	"github.com/notargets/gohelios/shockfront"
	"github.com/notargets/gohelios/utils"
)

// ShockTrackCmd represents the shocktrack command
var ShockTrackCmd = &cobra.Command{
	Use:   "shocktrack",
	Short: "Detect the shock front at every timestep and write it as CSV",
	Long: `
Detects the shock front in the mass density of a dataset and writes one row per
timestep: time_ns,radius_um,zone_index

The first row is pinned to radius 0 and carries zone_index -1, since no zone
edge is reported there.

gohelios shocktrack -F run.yaml -o shock.csv`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip  *InputParameters.AnalysisParameters
			w   = cmd.OutOrStdout()
			out = viper.GetString("output")
		)
		if ip, err = analysisParameters(); err != nil {
			return
		}
		if out != "" {
			ip.Print()
			var file *os.File
			if file, err = os.Create(out); err != nil {
				return
			}
			defer func() {
				if cerr := file.Close(); err == nil {
					err = cerr
				}
			}()
			w = file
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		_, err = runShockTrack(ctx, ip, w)
		return
	},
}

func init() {
	rootCmd.AddCommand(ShockTrackCmd)
	addAnalysisFlags(ShockTrackCmd)
	ShockTrackCmd.Flags().StringP("output", "o", "", "CSV file for the trajectory, stdout when empty")
}

func runShockTrack(ctx context.Context, ip *InputParameters.AnalysisParameters, w io.Writer) (tr shockfront.Trajectory, err error) {
	var (
		d     *shockfront.Detector
		ds    *dataio.Dataset
		start = time.Now()
	)
	if d, err = shockfront.NewDetector(shockfront.WithThreshold(ip.Threshold),
		shockfront.WithParallelDegree(ip.ParallelDegree)); err != nil {
		return
	}
	if ds, err = dataio.Load(dataio.FileSource{Path: ip.DataFile}); err != nil {
		return
	}
	if tr, err = d.DetectParallel(ctx, ds.MassDensity, ds.RadiusEdgesUM, ds.TimeEdgesNS); err != nil {
		return
	}
	nt, nz := ds.Dims()
	logger.Infow("shock front detected",
		"data", ip.DataFile, "timesteps", nt, "zones", nz,
		"fallbacks", tr.FallbackCount(), "elapsed", time.Since(start))
	logger.Debugw("memory", "usage", utils.GetMemUsage())
	err = WriteTrajectoryCSV(w, tr)
	return
}

// WriteTrajectoryCSV writes a header and one time_ns,radius_um,zone_index row
// per timestep. The pinned first row gets zone index -1.
func WriteTrajectoryCSV(w io.Writer, tr shockfront.Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time_ns", "radius_um", "zone_index"}); err != nil {
		return err
	}
	for t := 0; t < tr.Len(); t++ {
		idx := tr.Index[t]
		if t == 0 {
			idx = -1
		}
		if err := cw.Write([]string{
			strconv.FormatFloat(tr.Time[t], 'g', -1, 64),
			strconv.FormatFloat(tr.Radius[t], 'g', -1, 64),
			strconv.Itoa(idx),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
