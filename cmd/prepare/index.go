package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odor-source-service/internal/pkg/logger"
	"github.com/odor-source-service/internal/relevance"
	"github.com/odor-source-service/internal/repository/facility"
	"github.com/odor-source-service/internal/repository/index"
	"github.com/odor-source-service/internal/usecase"
)

// NewIndexCmd - команда построения индекса релевантности по набору данных
func NewIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the TF-IDF relevance index from the facility dataset",
		Long:  `Fits the vocabulary on the facility documents, computes the per-record weight matrix and atomically publishes both artifacts. Rerunning on an unchanged dataset produces identical artifacts.`,
		RunE:  runIndex,
	}

	cmd.Flags().String("facilities", "artifacts/ahmedabad_odor_sources_cleaned.csv", "Path to the facility CSV dataset")
	cmd.Flags().String("vectorizer", "artifacts/tfidf_vectorizer.json", "Path to the published vectorizer artifact")
	cmd.Flags().String("weights", "artifacts/feature_matrix.json", "Path to the published weight matrix artifact")
	cmd.Flags().Int("max-features", relevance.MaxFeatures, "Vocabulary size cap")

	return cmd
}

func runIndex(cmd *cobra.Command, _ []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	log, err := logger.New(level)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer log.Sync()

	facilitiesPath, _ := cmd.Flags().GetString("facilities")
	vectorizerPath, _ := cmd.Flags().GetString("vectorizer")
	weightsPath, _ := cmd.Flags().GetString("weights")
	maxFeatures, _ := cmd.Flags().GetInt("max-features")

	facilityRepo, err := facility.Load(facilitiesPath, log)
	if err != nil {
		return fmt.Errorf("load facility store: %w", err)
	}

	indexRepo := index.NewArtifactRepository(vectorizerPath, weightsPath, log)
	uc := usecase.NewKBUseCase(facilityRepo, indexRepo, maxFeatures, log)
	if err := uc.Build(); err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "published %s and %s from %d records\n",
		vectorizerPath, weightsPath, facilityRepo.Len())
	return nil
}
