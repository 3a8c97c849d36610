package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/labelscan/labelscan/internal/batch"
	"github.com/labelscan/labelscan/internal/config"
	"github.com/labelscan/labelscan/internal/extract"
	"github.com/labelscan/labelscan/internal/ocr"
	"github.com/labelscan/labelscan/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("labelscan %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	// Configure logging to stderr (stdout is for the JSON result)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.LogLevel == "debug" {
		log.Printf("labelscan v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	flags := flag.NewFlagSet("labelscan", flag.ExitOnError)
	flags.Usage = printUsage
	categoryFlag := flags.String("category", "", "product category hint: food, electronics, cosmetics, generic")
	batchFlag := flags.String("batch", "", "process a YAML manifest of images instead of a single source")
	annotateFlag := flags.String("annotate", cfg.AnnotateDir, "write detection overlay PNGs to this directory")
	flags.Parse(os.Args[1:])

	p := pipeline.New(pipeline.Config{
		Engine:            ocr.NewTesseract(cfg.Languages...),
		TargetWidth:       cfg.TargetWidth,
		MinWordConfidence: cfg.MinWordConfidence,
		FetchTimeout:      cfg.FetchTimeout,
		AnnotateDir:       *annotateFlag,
	})

	if *batchFlag != "" {
		runBatch(p, cfg, *batchFlag)
		return
	}

	args := flags.Args()
	if len(args) != 1 {
		printUsage()
		os.Exit(1)
	}
	runSingle(p, args[0], *categoryFlag)
}

// runSingle processes one image from a file path or URL and prints the
// result as JSON. Exits 1 when processing failed terminally; a produced
// result, however low its confidence, exits 0.
func runSingle(p *pipeline.Pipeline, source, category string) {
	cat := extract.ParseCategory(category)

	var result *pipeline.Result
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		result = p.ProcessURL(context.Background(), source, cat)
	} else {
		result = p.ProcessFile(source, cat)
	}

	emitJSON(result)
	if result.Error != "" {
		os.Exit(1)
	}
}

// runBatch processes a YAML manifest and prints the aggregated progress as
// JSON. Exits 1 only when every task failed.
func runBatch(p *pipeline.Pipeline, cfg *config.Config, manifestPath string) {
	manifest, err := batch.LoadManifest(manifestPath)
	if err != nil {
		log.Fatalf("Manifest error: %v", err)
	}

	workers := manifest.Workers
	if workers <= 0 {
		workers = cfg.Workers
	}

	runner := batch.NewRunner(p, workers)
	progress := runner.Run(context.Background(), manifest.Tasks())

	emitJSON(progress)
	if progress.Completed == 0 && progress.Failed > 0 {
		os.Exit(1)
	}
}

func emitJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}

func printUsage() {
	fmt.Println("labelscan - extract legal metrology fields from packaging photos")
	fmt.Println()
	fmt.Println("Usage: labelscan [options] IMAGE|URL")
	fmt.Println("       labelscan --batch manifest.yaml")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --category CAT     Product category hint: food, electronics, cosmetics, generic")
	fmt.Println("  --batch FILE       Process a YAML manifest of images")
	fmt.Println("  --annotate DIR     Write detection overlay PNGs to DIR")
	fmt.Println("  --version, -v      Print version information")
	fmt.Println("  --help, -h         Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  LABELSCAN_LANGUAGES=eng+hin    Tesseract languages")
	fmt.Println("  LABELSCAN_TARGET_WIDTH=1200    Working image width")
	fmt.Println("  LABELSCAN_MIN_WORD_CONF=60     Word confidence floor (0-100)")
	fmt.Println("  LABELSCAN_FETCH_TIMEOUT=30     Remote fetch timeout in seconds")
	fmt.Println("  LABELSCAN_WORKERS=5            Batch worker pool size")
	fmt.Println("  LABELSCAN_LOG_LEVEL=debug      Enable debug logging")
	fmt.Println("  LABELSCAN_ANNOTATE_DIR=DIR     Always write detection overlays")
	fmt.Println()
	fmt.Println("The result is printed to stdout as JSON; logs go to stderr.")
}
