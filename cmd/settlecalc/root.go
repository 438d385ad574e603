package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"settlement-engine/internal/model"
	"settlement-engine/internal/schedule"
)

type rootFlags struct {
	schedule string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "settlecalc",
		Short:         "Estimate California auto-injury settlement ranges from case files",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&f.schedule, "schedule", "", "Rate schedule override: YAML file or http(s) URL")

	root.AddCommand(newCalculateCmd(f), newEstimateCmd(f), newScheduleCmd(f))
	return root
}

func (f *rootFlags) loadSchedule(ctx context.Context) (*schedule.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s, err := schedule.Load(ctx, f.schedule)
	if err != nil {
		return nil, exitError(3, "failed to load schedule: %v", err)
	}
	return s, nil
}

// readCase loads a case from path, or from stdin when path is "-".
func readCase(cmd *cobra.Command, path string) (*model.CaseInput, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, exitError(3, "failed to read case: %v", err)
	}

	in, err := model.DecodeCase(data)
	if err != nil {
		return nil, exitError(2, "%s: %v", path, err)
	}
	return in, nil
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
