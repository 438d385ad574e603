package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"settlement-engine/internal/engine"
	"settlement-engine/internal/render"
)

func newCalculateCmd(root *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "calculate <case.json|->",
		Short: "Score a case and print the settlement range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			rates, err := root.loadSchedule(cmd.Context())
			if err != nil {
				return err
			}
			in, err := readCase(cmd, args[0])
			if err != nil {
				return err
			}

			res := engine.Calculate(in, rates)
			if format == "text" {
				_, err = io.WriteString(cmd.OutOrStdout(), render.Text(res))
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or text")
	return cmd
}

func newEstimateCmd(root *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "estimate <case.json|->",
		Short: "Estimate billed medical costs from the treatment section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			rates, err := root.loadSchedule(cmd.Context())
			if err != nil {
				return err
			}
			in, err := readCase(cmd, args[0])
			if err != nil {
				return err
			}

			res := engine.EstimateMedicalCosts(in, rates)
			if format == "text" {
				_, err = io.WriteString(cmd.OutOrStdout(), render.Estimate(res))
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or text")
	return cmd
}

func checkFormat(format string) error {
	if format != "json" && format != "text" {
		return exitError(2, "unknown format %q: use json or text", format)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
