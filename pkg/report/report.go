// Package report aggregates per-file audit results into the compliance
// artifacts the surrounding tooling consumes: a JSON report keyed by
// relative file path and an optional PDF summary for review handoff.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/accessibly/remedia/pkg/a11y"
)

// Report collects audit results for a batch of files, keyed by the
// file's path relative to the audit root.
type Report struct {
	results map[string]a11y.Result
}

// New creates an empty report.
func New() *Report {
	return &Report{results: make(map[string]a11y.Result)}
}

// Add records one file's audit result. A repeated path replaces the
// earlier entry.
func (r *Report) Add(relPath string, result a11y.Result) {
	r.results[relPath] = result
}

// Len returns the number of audited files.
func (r *Report) Len() int {
	return len(r.results)
}

// TotalIssues sums technical and subjective issues across all files.
func (r *Report) TotalIssues() (technical, subjective int) {
	for _, result := range r.results {
		technical += len(result.Technical)
		subjective += len(result.Subjective)
	}
	return technical, subjective
}

// Paths returns the audited file paths in sorted order.
func (r *Report) Paths() []string {
	paths := make([]string, 0, len(r.results))
	for path := range r.results {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Result returns the stored result for a path.
func (r *Report) Result(relPath string) (a11y.Result, bool) {
	result, ok := r.results[relPath]
	return result, ok
}

// MarshalJSON serializes the report as a map keyed by relative path.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.results)
}

// WriteJSON writes the report to a file as indented JSON.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r.results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal audit report: %w", err)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("failed to write audit report: %w", err)
	}
	return nil
}
