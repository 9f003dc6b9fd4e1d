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
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gohelios/InputParameters"
	"github.com/notargets/gohelios/dataio"
	"github.com/notargets/gohelios/logger"
	"github.com/notargets/gohelios/plotting"
	"github.com/notargets/gohelios/shockfront"
	"github.com/notargets/gohelios/smoothing"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render field maps, zone trajectories and shock tracks to image files",
	Long: `
Renders the requested plot kinds of a dataset into the output directory, one
image per kind. Known kinds: radius, density, elecdensity, eletemp, iontemp,
radtemp, pressure, fluidvel, shocktrack, max_pressure, max_density

gohelios plot -F run.yaml --plots radius,density --shocktrack -o plots`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.AnalysisParameters
			h  *dataio.Helios
			st = plotting.DefaultStyle()
		)
		if ip, err = analysisParameters(); err != nil {
			return
		}
		ip.Print()
		st.ColorMap = viper.GetString("colormap")
		st.DPI = viper.GetInt("dpi")
		r := newRenderer(ip, st)
		r.Format = viper.GetString("format")
		r.Options.ShockTrack = viper.GetBool("shocktrack")
		if h, _, err = runPlots(ip, r); err != nil {
			return
		}
		if viper.GetBool("graph") {
			var (
				ds *dataio.Dataset
				tr shockfront.Trajectory
			)
			if ds, err = h.LoadAndProcess(); err != nil {
				return
			}
			if tr, err = h.ShockTrajectory(ip.Threshold); err != nil {
				return
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			plotting.Interactive(ctx, plotting.TrajectoryLines(ds, tr))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	addAnalysisFlags(PlotCmd)
	PlotCmd.Flags().StringSlice("plots", []string{"radius", "density", "shocktrack"}, "plot kinds to render")
	PlotCmd.Flags().StringP("outputDir", "o", ".", "directory for the images")
	PlotCmd.Flags().String("format", "png", "image format: png, jpg or tif")
	PlotCmd.Flags().String("colormap", "jet", "color map for field plots: jet, bluered, blackbody, kindlmann")
	PlotCmd.Flags().Int("dpi", 200, "image resolution")
	PlotCmd.Flags().Bool("shocktrack", false, "overlay the detected shock front on field plots")
	PlotCmd.Flags().Bool("smooth", true, "Savitzky-Golay smooth the per timestep maxima")
	PlotCmd.Flags().Int("window", smoothing.DefaultWindow, "smoothing window length")
	PlotCmd.Flags().Int("polyorder", smoothing.DefaultPolyOrder, "smoothing polynomial order")
	PlotCmd.Flags().BoolP("graph", "g", false, "display the zone and shock trajectories in a window")
}

func newRenderer(ip *InputParameters.AnalysisParameters, st plotting.Style) (r *plotting.FileRenderer) {
	r = plotting.NewFileRenderer(ip.OutputDir, st)
	r.Name = ip.Title
	r.Smooth = ip.Smooth
	r.WindowLength = ip.WindowLength
	r.PolyOrder = ip.PolyOrder
	r.Options.Threshold = ip.Threshold
	return
}

// runPlots renders every kind in ip.Plots, stopping at the first failure.
func runPlots(ip *InputParameters.AnalysisParameters, r *plotting.FileRenderer) (h *dataio.Helios, paths []string, err error) {
	if h, err = dataio.NewHelios(dataio.FileSource{Path: ip.DataFile}, r); err != nil {
		return
	}
	for _, kind := range ip.Plots {
		var path string
		r.Options.XLim, r.Options.YLim = ip.Limit(kind+"x"), ip.Limit(kind+"y")
		if path, err = h.Plot(kind); err != nil {
			logger.Errorw("plot failed", "kind", kind, "error", err)
			return
		}
		logger.Infow("plot written", "kind", kind, "path", path)
		paths = append(paths, path)
	}
	return
}
