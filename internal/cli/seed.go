package cli

import (
	"errors"
	"fmt"

	"github.com/rogerio-castellano/inventory-dashboard/internal/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Bulk-create products from a CSV or YAML fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedFile == "" {
			return errors.New("--file is required")
		}

		rows, err := seed.ParseFile(seedFile)
		if err != nil {
			return err
		}

		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		store, err := openStore(cfg.Database, log)
		if err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		defer store.Close()

		result, err := seed.Import(cmd.Context(), store.Products, rows)
		for _, rowErr := range result.Errors {
			log.Warn("skipped fixture row", zap.Int("row", rowErr.Row), zap.String("reason", rowErr.Message))
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d products, skipped %d rows\n", result.Imported, len(result.Errors))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture file (.csv, .yaml or .yml)")
	rootCmd.AddCommand(seedCmd)
}
