// Package convert orchestrates BVH-to-dataset conversion: read one
// file (or a directory of files), parse, extract and write the
// configured outputs.
package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"bvhmotion/internal/config"
	"bvhmotion/pkg/bvh"
	"bvhmotion/pkg/export"
	"bvhmotion/pkg/motion"
)

// Options bundles the conversion configuration with the single-file
// output override.
type Options struct {
	Config config.Config
	Output string // explicit blob path; single-file mode only
}

// Result describes one completed conversion.
type Result struct {
	Input    string
	Output   string
	Joints   int
	Frames   int
	Duration float64
	Dataset  *motion.Dataset
}

// File converts one BVH file. The input path is checked before any
// parsing; a missing file surfaces the os path error unchanged. No
// output file is written when parsing or extraction fails.
func File(path string, opts Options) (Result, error) {
	if _, err := os.Stat(path); err != nil {
		return Result{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	tree, err := bvh.Parse(string(data))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("input", path).Strs("joints", tree.JointNames()).Msg("parsed hierarchy")

	ds, err := motion.Extract(tree)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	out := opts.Output
	if out == "" {
		out = derivedPath(path, opts.Config.OutputDir, "_parsed.json")
	}
	if err := export.Save(out, ds); err != nil {
		return Result{}, err
	}

	cfg := opts.Config
	if cfg.WriteCSV {
		if err := export.SaveFramesCSV(derivedPath(path, cfg.OutputDir, "_frames.csv"), ds); err != nil {
			return Result{}, err
		}
	}
	if cfg.WriteHierarchy {
		if err := export.SaveHierarchyCSV(derivedPath(path, cfg.OutputDir, "_hierarchy.csv"), tree, cfg.OffsetScale); err != nil {
			return Result{}, err
		}
	}
	if cfg.PlotColumn != "" {
		if err := export.SavePlot(derivedPath(path, cfg.OutputDir, "_plot.png"), ds, cfg.PlotColumn); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		Input:    path,
		Output:   out,
		Joints:   len(ds.JointNames()),
		Frames:   ds.FrameCount(),
		Duration: ds.Duration(),
		Dataset:  ds,
	}
	log.Info().
		Str("input", path).
		Str("output", out).
		Int("joints", res.Joints).
		Int("frames", res.Frames).
		Float64("duration_s", res.Duration).
		Msg("converted")
	return res, nil
}

// Dir converts every .bvh file under dir. Files are independent
// parses and run concurrently, bounded by the configured worker
// count. All failures are collected; successful conversions are not
// rolled back.
func Dir(dir string, opts Options) ([]Result, error) {
	paths, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .bvh files under %s", dir)
	}

	workers := opts.Config.Workers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []Result
		errs    []error
	)
	for _, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()
			fileOpts := opts
			fileOpts.Output = "" // per-file derived paths in batch mode
			res, err := File(path, fileOpts)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			results = append(results, res)
		}(path)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Input < results[j].Input })
	return results, errors.Join(errs...)
}

// ListFiles returns every .bvh file under dir, case-insensitive on
// the extension, sorted for deterministic batch order.
func ListFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".bvh") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// derivedPath rewrites input's .bvh suffix to suffix, optionally
// redirecting into outputDir.
func derivedPath(input, outputDir, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + suffix
	if outputDir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(outputDir, base)
}
