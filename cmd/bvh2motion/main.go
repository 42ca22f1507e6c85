package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"bvhmotion/internal/config"
	"bvhmotion/internal/convert"
	"bvhmotion/internal/logging"
)

func main() {
	var (
		output     = flag.String("o", "", "output path for the dataset blob (default: input with _parsed.json)")
		dir        = flag.String("dir", "", "convert every .bvh file under this directory instead of a single file")
		configPath = flag.String("config", "", "TOML options file")
		writeCSV   = flag.Bool("csv", false, "also write a per-frame CSV next to the blob")
		writeHier  = flag.Bool("hierarchy", false, "also write a joint hierarchy CSV")
		plotCol    = flag.String("plot", "", "dataset column to plot as PNG")
		stats      = flag.Bool("stats", false, "print per-column min/max/mean after converting")
		logLevel   = flag.String("log-level", "", "log level: debug|info|warn|error")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: bvh2motion [flags] input.bvh\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bvh2motion: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "csv":
			cfg.WriteCSV = *writeCSV
		case "hierarchy":
			cfg.WriteHierarchy = *writeHier
		case "plot":
			cfg.PlotColumn = *plotCol
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	logging.Init("bvh2motion", cfg.LogLevel)
	opts := convert.Options{Config: cfg, Output: *output}

	if *dir != "" {
		results, err := convert.Dir(*dir, opts)
		if err != nil {
			log.Fatal().Err(err).Msg("batch conversion failed")
		}
		var frames int
		for _, res := range results {
			frames += res.Frames
		}
		log.Info().Int("files", len(results)).Int("frames", frames).Msg("batch complete")
		return
	}

	input := flag.Arg(0)
	if input == "" {
		flag.Usage()
		os.Exit(2)
	}
	res, err := convert.File(input, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
	fmt.Printf("saved %s\n", res.Output)
	fmt.Printf("  joints: %d | frames: %d | duration: %.2fs\n", res.Joints, res.Frames, res.Duration)
	if *stats {
		for _, s := range res.Dataset.Summaries() {
			fmt.Printf("  %-24s min %10.4f  max %10.4f  mean %10.4f\n", s.Name, s.Min, s.Max, s.Mean)
		}
	}
}
