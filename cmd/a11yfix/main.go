// a11yfix is a command-line tool for remediating accessibility problems
// in converted HTML documents.
//
// The tool walks a file or directory of HTML documents and runs the
// mutation pipeline over each one: heading hierarchy, table structure,
// responsive widths, typography, color contrast, link and iframe text,
// deprecated markup, and emoji labeling. Each applied fix is logged.
// The pipeline is idempotent; re-running the tool over its own output
// changes nothing.
//
// Usage:
//
//	a11yfix [options] [path]
//
// The path may be a single HTML file or a directory; it defaults to the
// current directory.
//
// Options:
//
//	-config string        Path to a YAML rule configuration file
//	-suffix string        Write output to <name><suffix>.html instead of fixing in place
//	-dry-run              Report the fixes that would be applied without writing
//	-decorative           Mark images that have empty alt text as decorative
//	                      (role="presentation") without prompting
//	-suggest-alt          Generate alt text for local images that lack it,
//	                      by running them through a Document AI OCR processor
//	-ai-project string    Google Cloud project of the processor
//	-ai-processor string  Document AI processor ID
//	-ai-location string   Processor location (default "us")
//	-memory string        SQLite file caching accepted suggestions
//	                      (default ".remedia-suggestions.db")
//
// Alt-text generation needs GOOGLE_APPLICATION_CREDENTIALS in the
// environment. Suggestions are cached in the memory store keyed by
// image filename and size, so re-runs and renamed copies skip the API.
//
// Exit codes: 0 on success, 1 on a fatal I/O error. Per-file failures
// are logged and the remaining files are still processed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/accessibly/remedia/pkg/a11y"
	"github.com/accessibly/remedia/pkg/htmldoc"
	"github.com/accessibly/remedia/pkg/suggest"
)

func loadConfig(path string) (a11y.Config, error) {
	cfg := a11y.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func collectHTMLFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{target}, nil
	}

	var files []string
	err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".html" || ext == ".htm" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// altSuggester generates alt text for images through the OCR client,
// consulting the suggestion memory first.
type altSuggester struct {
	client *suggest.Client
	memory *suggest.Memory
	logger *slog.Logger
}

// suggestAltText fills in alt attributes on local images that have none,
// mutating the document in place before the fix pipeline serializes it.
// Remote images and images whose bytes cannot be read are left for the
// audit report.
func (s *altSuggester) suggestAltText(ctx context.Context, doc *htmldoc.Document, baseDir string) int {
	applied := 0
	for _, img := range htmldoc.Elements(doc.Root, "img") {
		if htmldoc.GetAttr(img, "alt") != "" || htmldoc.GetAttr(img, "role") == "presentation" {
			continue
		}
		src := htmldoc.GetAttr(img, "src")
		if src == "" {
			continue
		}
		if u, err := url.Parse(src); err != nil || u.Scheme != "" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(src)))
		if err != nil {
			s.logger.Warn("cannot read image for alt text", "src", src, "error", err)
			continue
		}

		text, hit, err := s.memory.Get(src, int64(len(data)))
		if err != nil {
			s.logger.Warn("suggestion store read failed", "src", src, "error", err)
		}
		if !hit {
			hint := htmldoc.Text(img.Parent)
			text, err = s.client.Suggest(ctx, data, hint)
			if err != nil {
				s.logger.Warn("alt text suggestion unavailable", "src", src, "error", err)
				continue
			}
			if text == "" {
				continue
			}
			if err := s.memory.Put(src, int64(len(data)), text); err != nil {
				s.logger.Warn("suggestion store write failed", "src", src, "error", err)
			}
		}

		htmldoc.SetAttr(img, "alt", text)
		s.logger.Info("fix", "description", fmt.Sprintf("Set alt text %q on image %s", text, src))
		applied++
	}
	return applied
}

// outputPath applies the optional suffix: page.html -> page<suffix>.html.
func outputPath(file, suffix string) string {
	if suffix == "" {
		return file
	}
	ext := filepath.Ext(file)
	return strings.TrimSuffix(file, ext) + suffix + ext
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML rule configuration file")
	suffix := flag.String("suffix", "", "Write output to <name><suffix>.html instead of fixing in place")
	dryRun := flag.Bool("dry-run", false, "Report the fixes that would be applied without writing")
	decorative := flag.Bool("decorative", false, "Mark images with empty alt text as decorative without prompting")
	suggestAlt := flag.Bool("suggest-alt", false, "Generate alt text for local images through Document AI")
	aiProject := flag.String("ai-project", "", "Google Cloud project of the OCR processor")
	aiProcessor := flag.String("ai-processor", "", "Document AI processor ID")
	aiLocation := flag.String("ai-location", "us", "Document AI processor location")
	memoryPath := flag.String("memory", ".remedia-suggestions.db", "SQLite file caching accepted suggestions")
	flag.Parse()

	target := flag.Arg(0)
	if target == "" {
		target = "."
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *decorative {
		// The flag is the caller's explicit decorative confirmation.
		cfg.ConfirmDecorative = func(string) bool { return true }
	}
	engine := a11y.New(cfg)

	files, err := collectHTMLFiles(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", target, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No HTML files found under %s\n", target)
		os.Exit(0)
	}

	// Cancellation is cooperative: the signal is checked between files,
	// never mid-document.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var suggester *altSuggester
	if *suggestAlt {
		if *aiProject == "" || *aiProcessor == "" {
			fmt.Fprintln(os.Stderr, "Error: -suggest-alt requires -ai-project and -ai-processor")
			os.Exit(1)
		}
		aiCfg := suggest.DefaultConfig()
		aiCfg.ProjectID = *aiProject
		aiCfg.ProcessorID = *aiProcessor
		aiCfg.Location = *aiLocation
		client, err := suggest.NewClient(ctx, aiCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer client.Close()
		memory, err := suggest.OpenMemory(*memoryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer memory.Close()
		suggester = &altSuggester{client: client, memory: memory, logger: logger}
	}

	fixedFiles, totalFixes := 0, 0
	for _, file := range files {
		if ctx.Err() != nil {
			logger.Warn("remediation interrupted", "processed", fixedFiles)
			break
		}

		data, err := os.ReadFile(file)
		if err != nil {
			logger.Error("failed to read file", "file", file, "error", err)
			continue
		}
		doc, err := htmldoc.Parse(data)
		if err != nil {
			logger.Error("failed to parse file", "file", file, "error", err)
			continue
		}

		altApplied := 0
		if suggester != nil {
			altApplied = suggester.suggestAltText(ctx, doc, filepath.Dir(file))
		}

		fixed, fixes, err := engine.Fix(doc)
		if err != nil {
			logger.Error("failed to fix file", "file", file, "error", err)
			continue
		}
		for _, fix := range fixes {
			logger.Info("fix", "file", file, "description", fix.Description)
		}
		totalFixes += len(fixes) + altApplied

		if *dryRun || len(fixes)+altApplied == 0 {
			fixedFiles++
			continue
		}
		out := outputPath(file, *suffix)
		if err := os.WriteFile(out, []byte(fixed), 0666); err != nil {
			// Per-file write failures are not fatal to the batch.
			logger.Error("failed to write file", "file", out, "error", err)
			continue
		}
		fixedFiles++
	}

	fmt.Printf("Processed %d files, applied %d fixes\n", fixedFiles, totalFixes)
}
