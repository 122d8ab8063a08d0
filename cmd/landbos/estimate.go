package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/LandBOS/internal/config"
	"github.com/MikeSquared-Agency/LandBOS/internal/estimator"
	"github.com/MikeSquared-Agency/LandBOS/internal/landbos"
)

func estimateCmd(configPath *string) *cobra.Command {
	var withGradient bool

	cmd := &cobra.Command{
		Use:          "estimate [inputs-file]",
		Short:        "Price the farm described in a YAML or JSON inputs file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runEstimate(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args[0], withGradient)
		},
	}

	cmd.Flags().BoolVarP(&withGradient, "gradient", "g", false, "include the design-variable gradient")
	return cmd
}

func runEstimate(out, logOut io.Writer, cfg *config.Config, path string, withGradient bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read inputs: %w", err)
	}
	var req estimator.Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse inputs: %w", err)
	}

	svc := estimator.New(nil, cfg.Project, newLogger(cfg.Logging, logOut))
	res, err := svc.Estimate(req, estimator.Options{Gradient: withGradient, Source: estimator.SourceCLI})
	if err != nil {
		return err
	}
	return writeIndented(out, res)
}

func defaultsCmd() *cobra.Command {
	var (
		rating   float64
		turbines int
	)

	cmd := &cobra.Command{
		Use:          "defaults",
		Short:        "Print the estimated construction parameters for a farm",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(rating > 0) || rating > landbos.MaxRating {
				return fmt.Errorf("--rating must be in (0, %g]", landbos.MaxRating)
			}
			if turbines < 1 || turbines > landbos.MaxTurbines {
				return fmt.Errorf("--turbines must be in [1, %d]", landbos.MaxTurbines)
			}
			return writeIndented(cmd.OutOrStdout(), landbos.Defaults(rating, turbines))
		},
	}

	cmd.Flags().Float64Var(&rating, "rating", 1.5, "turbine rating in MW")
	cmd.Flags().IntVar(&turbines, "turbines", 100, "number of turbines")
	return cmd
}

func writeIndented(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
