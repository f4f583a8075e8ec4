package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagesmith/pagesmith/pkg/errors"
	"github.com/pagesmith/pagesmith/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config   string   // site config path
	output   string   // output file path (or directory for --all)
	formats  []string // output formats: html, json, dot, svg, png
	keys     bool     // emit data-key attributes in HTML
	detailed bool     // include attributes in DOT diagram labels
	noCache  bool     // disable the artifact cache
	refresh  bool     // bypass cached entries
	all      bool     // render every page in the content directory
}

// renderCommand creates the render command for generating page output.
//
// Default settings:
//   - format: html (or the site config's formats)
//   - cache: file cache under ~/.cache/pagesmith/
//
// With no file argument, an interactive picker over the content
// directory is shown. With --all, every page in the content directory
// is rendered into the output directory.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a page to HTML and other formats",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}

			opts.formats = cfg.Formats
			if formatsStr != "" {
				opts.formats = parseFormats(formatsStr)
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			opts.keys = opts.keys || cfg.Keys

			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			if opts.all {
				return c.runRenderAll(cmd.Context(), runner, cfg.ContentDir, &opts)
			}

			input := ""
			if len(args) == 1 {
				input = args[0]
			} else {
				input, err = pickPage(cfg.ContentDir)
				if err != nil {
					return err
				}
				if input == "" {
					return nil // Picker dismissed
				}
			}
			return c.runRender(cmd.Context(), runner, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "site config file (default pagesmith.toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), json, dot, svg, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.keys, "keys", false, "emit stable child keys as data-key attributes")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show attributes in diagram output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached entries and re-render")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render every page in the content directory")

	return cmd
}

// pipelineOptions converts CLI flags to pipeline options.
func (c *CLI) pipelineOptions(opts *renderOpts) pipeline.Options {
	return pipeline.Options{
		Formats:  opts.formats,
		Keys:     opts.keys,
		Detailed: opts.detailed,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	}
}

// runRender renders a single page file and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, runner *pipeline.Runner, input string, opts *renderOpts) error {
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", input)
		}
		return err
	}

	logger := loggerFromContext(ctx)
	name := pageName(input)
	result, err := runner.Execute(ctx, name, data, c.pipelineOptions(opts))
	if err != nil {
		return err
	}
	for _, format := range opts.formats {
		logger.Debugf("Generated %s: %d bytes", format, len(result.Artifacts[format]))
	}

	printSuccess("Rendered %s", name)
	printStats(result.Stats.BlockCount, result.Stats.NodeCount, result.CacheInfo.SinkHit)

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// runRenderAll renders every page in the content directory. Output
// files land next to their sources unless --output names a directory.
func (c *CLI) runRenderAll(ctx context.Context, runner *pipeline.Runner, contentDir string, opts *renderOpts) error {
	if err := errors.ValidateContentDir(contentDir); err != nil {
		return err
	}

	pages, err := listPages(contentDir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		printInfo("No pages in %s", contentDir)
		return nil
	}

	outDir := opts.output
	if outDir == "" {
		outDir = contentDir
	}

	sp := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d pages", len(pages)))
	sp.Start()
	prog := newProgress(c.Logger)

	rendered := 0
	var failed []string
	for _, page := range pages {
		if ctx.Err() != nil {
			sp.Stop()
			return ctx.Err()
		}

		data, err := os.ReadFile(filepath.Join(contentDir, page+".json"))
		if err != nil {
			sp.StopWithError(fmt.Sprintf("read %s: %v", page, err))
			return err
		}

		result, err := runner.Execute(ctx, page, data, c.pipelineOptions(opts))
		if err != nil {
			// A single undecodable page should not abort the batch
			failed = append(failed, page)
			continue
		}

		for _, format := range opts.formats {
			path := filepath.Join(outDir, page+"."+format)
			if err := writeArtifact(path, result.Artifacts[format]); err != nil {
				sp.Stop()
				return err
			}
		}
		rendered++
	}

	if rendered == 0 && len(failed) > 0 {
		sp.StopWithError(fmt.Sprintf("No pages rendered, %d failed", len(failed)))
		printError("Failed: %s", strings.Join(failed, ", "))
		return fmt.Errorf("rendered 0 of %d pages", len(pages))
	}

	sp.StopWithSuccess(fmt.Sprintf("Rendered %d pages into %s", rendered, outDir))
	for _, page := range failed {
		printWarning("Skipped %s: page did not decode", page)
	}
	prog.done(fmt.Sprintf("Rendered %d pages", rendered))
	return nil
}

// pageName derives the page name from an input path.
func pageName(input string) string {
	return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.html, .svg, etc.), it strips that extension.
// This is used when generating multiple files (e.g., page.html, page.json).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// listPages lists the page names in a content directory, sorted by
// os.ReadDir's lexical order.
func listPages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var pages []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		pages = append(pages, strings.TrimSuffix(e.Name(), ".json"))
	}
	return pages, nil
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
