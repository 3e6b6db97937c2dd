package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"VortexEdge/internal/config"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run one screening pass and print the ranked report as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			d, err := buildDeps(cfg)
			if err != nil {
				return err
			}
			defer d.close()

			report, err := d.service.RunScan(context.Background())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}
