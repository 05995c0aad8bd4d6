package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odor-source-service/internal/pkg/logger"
	"github.com/odor-source-service/internal/usecase"
)

// NewIngestCmd - команда преобразования GeoJSON выгрузки в плоский CSV
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Convert a GeoJSON export into the flat facility dataset",
		Long:  `Reads an Overpass GeoJSON export, keeps point and polygon features, collapses polygons to centroid plus projected area and writes the flat CSV the service loads at startup.`,
		RunE:  runIngest,
	}

	cmd.Flags().String("input", "artifacts/export.geojson", "Path to the GeoJSON export")
	cmd.Flags().String("output", "artifacts/ahmedabad_odor_sources_cleaned.csv", "Path to the produced CSV dataset")

	return cmd
}

func runIngest(cmd *cobra.Command, _ []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	log, err := logger.New(level)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer log.Sync()

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	uc := usecase.NewIngestUseCase(log)
	n, err := uc.Ingest(input, output)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", n, output)
	return nil
}
