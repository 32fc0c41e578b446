package main

import (
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Start in the raw input probe view",
	Long: `Start the session in the input probe view, showing the stick
diamond, action indicators, and translated intent values. The shooter keeps
running in the background; press Tab to switch to it.

Examples:
  padprobe probe
  padprobe probe --fps 30`,
	Run: runProbe,
}

func runProbe(_ *cobra.Command, _ []string) {
	runSession(true)
}
