// a11yaudit is a command-line tool for auditing converted HTML documents
// for accessibility problems.
//
// The tool walks a file or directory of HTML documents, runs the
// read-only audit pass over each one, and writes an aggregate JSON
// report keyed by relative file path. Documents are never modified; use
// a11yfix for remediation.
//
// Usage:
//
//	a11yaudit [options] [path]
//
// The path may be a single HTML file or a directory; it defaults to the
// current directory.
//
// Options:
//
//	-config string  Path to a YAML rule configuration file
//	-o string       Report output path (default: audit_report.json in the target directory)
//	-pdf string     Also write a PDF summary of the report
//
// Configuration:
//
// The optional YAML file overrides the built-in rule tables, for example:
//
//	vague_link_phrases: ["click here", "here", "read more"]
//	max_fixed_width_px: 320
//	caption_placeholder: "Table"
//
// Exit codes: 0 on success, 1 on a fatal I/O error. Per-file read or
// parse failures are logged and the remaining files are still audited.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/accessibly/remedia/pkg/a11y"
	"github.com/accessibly/remedia/pkg/htmldoc"
	"github.com/accessibly/remedia/pkg/report"
)

// loadConfig overlays an optional YAML file onto the default rule
// tables.
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

// collectHTMLFiles resolves the target argument into the list of HTML
// files to process, plus the directory reports are relative to.
func collectHTMLFiles(target string) (files []string, root string, err error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, "", err
	}
	if !info.IsDir() {
		return []string{target}, filepath.Dir(target), nil
	}

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
	return files, target, err
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML rule configuration file")
	reportPath := flag.String("o", "", "Report output path (default: audit_report.json in the target directory)")
	pdfPath := flag.String("pdf", "", "Also write a PDF summary of the report")
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
	engine := a11y.New(cfg)

	files, root, err := collectHTMLFiles(target)
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

	rep := report.New()
	for _, file := range files {
		if ctx.Err() != nil {
			logger.Warn("audit interrupted", "remaining", len(files)-rep.Len())
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

		rel, err := filepath.Rel(root, file)
		if err != nil {
			rel = file
		}
		result := engine.Audit(doc, rel)
		rep.Add(rel, result)
		logger.Info("audited", "file", rel,
			"technical", len(result.Technical),
			"subjective", len(result.Subjective))
	}

	out := *reportPath
	if out == "" {
		out = filepath.Join(root, "audit_report.json")
	}
	if err := rep.WriteJSON(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *pdfPath != "" {
		if err := rep.WritePDF(*pdfPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	technical, subjective := rep.TotalIssues()
	fmt.Printf("Audited %d files: %d technical, %d subjective issues. Report: %s\n",
		rep.Len(), technical, subjective, out)
}
