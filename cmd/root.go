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
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gohelios/logger"
)

var errNoFlag = errors.New("no such persistent flag")

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gohelios",
	Short: "Shock front tracking and plotting for 1D radiation hydrodynamics output",
	Long: `
Reads time series of zone centered simulation output, reconstructs the zone edge
mesh, tracks the shock front through the mass density and plots the fields.

gohelios shocktrack -F run.yaml
gohelios plot -F run.yaml --plots density,radius --shocktrack`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err = logger.Init(viper.GetBool("debug")); err != nil {
			return
		}
		switch mode := viper.GetString("profile"); mode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		default:
			err = fmt.Errorf("unknown profile mode %q, use cpu or mem", mode)
		}
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
		logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gohelios.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "development logging at debug level")
	rootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the working directory")
	if err := bindPersistentFlags(rootCmd, "debug", "profile"); err != nil {
		panic(err)
	}
}

// bindPersistentFlags binds each named persistent flag of cmd to the viper
// key of the same name.
func bindPersistentFlags(cmd *cobra.Command, keys ...string) (err error) {
	for _, key := range keys {
		flag := cmd.PersistentFlags().Lookup(key)
		if flag == nil {
			return fmt.Errorf("%w: %s", errNoFlag, key)
		}
		if err = viper.BindPFlag(key, flag); err != nil {
			return
		}
	}
	return
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gohelios")
	}
	viper.SetEnvPrefix("GOHELIOS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags binds the flags of the command being run, so each subcommand owns
// its keys even when names repeat across commands.
func bindFlags(cmd *cobra.Command, args []string) error {
	return viper.BindPFlags(cmd.Flags())
}
