package main

import (
	"fmt"
	"strings"

	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/util"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagSamples int
	flagMirror  bool
)

var rootCmd = &cobra.Command{
	Use:          "ledtween",
	Short:        "Tween colours across an LED strip and stream the frames over MQTT",
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Stream frames until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStreamer(flagConfig)
	},
}

var easingsCmd = &cobra.Command{
	Use:   "easings",
	Short: "List the easing functions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range easing.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

var curveCmd = &cobra.Command{
	Use:   "curve <easing>",
	Short: "Print samples of an easing function",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, err := easing.Lookup(args[0])
		if err != nil {
			return err
		}

		var values []float64
		if flagMirror {
			values = util.GenerateLut(flagSamples, fn)
		} else {
			values = util.SampleCurve(flagSamples, fn)
		}

		out := cmd.OutOrStdout()
		for i, v := range values {
			bar := int(v * 40)
			if bar < 0 {
				bar = 0
			}
			fmt.Fprintf(out, "%3d %8.4f %s\n", i, v, strings.Repeat("#", bar))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "config.yaml", "YAML config file.")
	curveCmd.Flags().IntVar(&flagSamples, "samples", 20, "number of samples")
	curveCmd.Flags().BoolVar(&flagMirror, "mirror", false, "print a rise-and-fall table")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(easingsCmd)
	rootCmd.AddCommand(curveCmd)
}
