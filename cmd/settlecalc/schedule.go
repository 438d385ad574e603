package main

import (
	"github.com/spf13/cobra"
)

func newScheduleCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Print the effective rate schedule as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rates, err := root.loadSchedule(cmd.Context())
			if err != nil {
				return err
			}
			out, err := rates.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
