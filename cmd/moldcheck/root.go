package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "moldcheck",
		Short: "Mold and condensation risk check for a room measurement",
		Long: `moldcheck derives the relative humidity at a cold surface from room air
conditions, classifies its mold and condensation risk, checks the room
humidity against the SIA 180 limit for the outdoor temperature, and
attributes a likely cause.

Readings accept a comma as decimal separator ("20,5"). Sections whose
inputs are missing or unusable are reported as insufficient input.`,
		SilenceUsage: true,
	}
	root.AddCommand(newEvalCmd())
	return root
}
