package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"bfc_reports/pkg/core/common"
	"bfc_reports/pkg/core/config"
	"bfc_reports/pkg/core/pdf"
	"bfc_reports/pkg/core/projection"
	"bfc_reports/pkg/core/report"
)

// Exit codes form the CLI contract: 0 when the run settled, including
// partial document failures, 1 for known configuration or data errors,
// 2 for anything unexpected.
const (
	exitOK         = 0
	exitKnownError = 1
	exitUnexpected = 2
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "fatal: unexpected failure: %v\n", r)
			code = exitUnexpected
		}
	}()

	outputDir := flag.String("output-dir", "", "directory for generated PDF documents (default ./outputs)")
	configPath := flag.String("config", "", "optional YAML or HJSON file overriding baseline and growth assumptions")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// A missing .env is the normal case; only explicit variables matter.
	_ = godotenv.Load()

	runID := uuid.New().String()[:8]
	logger := common.InitLogger("logs", runID, *debug)

	logger.Info().Msg("BFC projection report generator starting")

	settings := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error().Str("config", *configPath).Err(err).Msg("Could not load configuration")
			return exitKnownError
		}
		settings = loaded
		logger.Info().Str("config", *configPath).Msg("Configuration overrides applied")
	}

	if *outputDir != "" {
		settings.OutputDir = *outputDir
	} else if env := os.Getenv("BFC_OUTPUT_DIR"); env != "" {
		settings.OutputDir = env
	}

	if err := os.MkdirAll(settings.OutputDir, 0o755); err != nil {
		logger.Error().Str("output_dir", settings.OutputDir).Err(err).Msg("Could not create output directory")
		return exitKnownError
	}

	if len(settings.RawBaseline) == 0 {
		logger.Error().Msg("Baseline financial data is empty; nothing to project")
		return exitKnownError
	}
	baseline, warnings := config.BaselineFromRaw(settings.RawBaseline)
	for _, w := range warnings {
		logger.Warn().Str("key", w.Key).Msg(w.Message)
	}

	engine := projection.NewEngine(logger)
	bundle := engine.Project(baseline, settings.Growth)

	renderer := pdf.NewRenderer(logger)
	orch := report.NewOrchestrator(settings.OutputDir, renderer, logger)
	orch.SetVerifier(pdf.Verify)

	successes, failures := orch.Generate(context.Background(), bundle)

	fmt.Println()
	fmt.Println("================ Generation Summary ================")
	for _, h := range projection.Horizons() {
		if path, ok := successes[h]; ok {
			fmt.Printf("  [SUCCESS] %-10s -> %s\n", h, path)
		} else if fm, ok := failures[h]; ok {
			fmt.Printf("  [FAILED]  %-10s -> %s\n", h, fm)
		}
	}
	fmt.Printf("  %d succeeded, %d failed\n", len(successes), len(failures))
	fmt.Println("====================================================")

	switch {
	case len(successes) == 0 && len(failures) == 0:
		logger.Error().Msg("No documents were generated")
		return exitKnownError
	case len(failures) > 0:
		logger.Warn().
			Int("succeeded", len(successes)).
			Int("failed", len(failures)).
			Msg("Run completed with partial failures")
	default:
		logger.Info().Int("documents", len(successes)).Msg("All documents generated")
	}
	return exitOK
}
