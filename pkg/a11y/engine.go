package a11y

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/accessibly/remedia/pkg/htmldoc"
)

// IssueKind partitions audit findings by how they must be resolved.
type IssueKind string

const (
	// KindTechnical marks machine-verifiable violations a fix pass can
	// repair outright.
	KindTechnical IssueKind = "technical"
	// KindSubjective marks findings that need human judgment: alt-text
	// quality, caption wording, equation verification.
	KindSubjective IssueKind = "subjective"
)

// Issue is one audit finding. Issues are immutable once created.
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Message  string    `json:"message"`
	Location string    `json:"location"`
}

// Fix records a single mutation applied by the Fix pass.
type Fix struct {
	Description string `json:"description"`
}

// Result is the outcome of auditing one document.
type Result struct {
	Path       string  `json:"-"`
	Technical  []Issue `json:"technical"`
	Subjective []Issue `json:"subjective"`
}

// IssueCount returns the total number of issues in the result.
func (r Result) IssueCount() int {
	return len(r.Technical) + len(r.Subjective)
}

// Engine runs the audit and fix passes. It is safe for sequential reuse
// across files; it holds only immutable configuration.
type Engine struct {
	cfg Config

	vaguePhrases  map[string]bool
	genericAlts   map[string]bool
	genericTitles map[string]bool
	titleCaser    cases.Caser
}

// New constructs an Engine from a Config. Word lists are normalized to
// lowercase lookup sets once here rather than per document.
func New(cfg Config) *Engine {
	return &Engine{
		cfg:           cfg,
		vaguePhrases:  lowerSet(cfg.VagueLinkPhrases),
		genericAlts:   lowerSet(cfg.GenericAltWords),
		genericTitles: lowerSet(cfg.GenericIframeTitles),
		titleCaser:    cases.Title(language.English),
	}
}

func lowerSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = true
	}
	return set
}

// Fix runs the mutation pipeline over the document and returns the
// serialized result together with one Fix record per applied mutation.
// Passes run in a fixed order on the single tree representation:
// structure (headings, tables), deprecated markup, reflow and
// typography, contrast, links and embedded media, emoji wrapping.
//
// Running Fix over its own output applies nothing and returns an empty
// fix list.
func (e *Engine) Fix(doc *htmldoc.Document) (string, []Fix, error) {
	var fixes []Fix

	fixes = append(fixes, e.fixHeadings(doc)...)
	fixes = append(fixes, e.fixTables(doc)...)
	// Deprecated markup is rewritten before the style passes so the
	// inline styles the rewrite produces are reflow- and
	// contrast-checked in the same run.
	fixes = append(fixes, e.fixDeprecatedTags(doc)...)
	fixes = append(fixes, e.fixReflow(doc)...)
	fixes = append(fixes, e.fixContrast(doc)...)
	fixes = append(fixes, e.fixLinks(doc)...)
	fixes = append(fixes, e.fixImages(doc)...)
	fixes = append(fixes, e.fixIframes(doc)...)
	fixes = append(fixes, e.fixEmoji(doc)...)

	serialized, err := doc.Render()
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize fixed document: %w", err)
	}
	return serialized, fixes, nil
}

func fixf(format string, args ...interface{}) Fix {
	return Fix{Description: fmt.Sprintf(format, args...)}
}

// truncate shortens a string for issue locations and messages.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
