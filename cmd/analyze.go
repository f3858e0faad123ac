package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/analyzer"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/config"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/detector"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [image]",
	Short: "Analyze a portrait photo",
	Long: `Run the classification pipeline on a local portrait photo and print
the analysis as JSON. With --dir, every supported image in the directory is
analyzed and the results are written as one JSON document.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("dir", "", "Analyze every image in a directory instead of a single file")
	analyzeCmd.Flags().Bool("pretty", true, "Indent the JSON output")
}

// supportedImage reports whether a filename looks like a decodable image.
func supportedImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp":
		return true
	default:
		return false
	}
}

// analyzeFile runs the pipeline on one image file.
func analyzeFile(ctx context.Context, pipeline *analyzer.Analyzer, path string) (*analyzer.FaceAnalysisResult, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator's CLI arguments
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := pipeline.Analyze(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}
	return result, nil
}

// printJSON writes a value as (optionally indented) JSON to stdout.
func printJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dir := mustGetString(cmd, "dir")
	pretty := mustGetBool(cmd, "pretty")

	if dir == "" && len(args) != 1 {
		return fmt.Errorf("provide an image path or --dir")
	}

	cfg := config.Load()
	log := newLogger(cfg.Log.Level)
	faceMesh := detector.NewFaceMesh(cfg.Detector.URL, cfg.Detector.Timeout, log)
	pipeline := analyzer.New(faceMesh, log)
	ctx := cmd.Context()

	if dir == "" {
		result, err := analyzeFile(ctx, pipeline, args[0])
		if err != nil {
			return err
		}
		return printJSON(result, pretty)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if !entry.IsDir() && supportedImage(entry.Name()) {
			images = append(images, filepath.Join(dir, entry.Name()))
		}
	}
	if len(images) == 0 {
		return fmt.Errorf("no supported images in %s", dir)
	}

	bar := progressbar.Default(int64(len(images)), "analyzing")
	results := make(map[string]*analyzer.FaceAnalysisResult, len(images))
	for _, path := range images {
		result, err := analyzeFile(ctx, pipeline, path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping image")
			_ = bar.Add(1)
			continue
		}
		results[filepath.Base(path)] = result
		_ = bar.Add(1)
	}

	fmt.Println()
	return printJSON(results, pretty)
}
