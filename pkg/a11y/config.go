package a11y

// Config holds the rule tables and limits for the audit/fix engine.
// The heuristic word lists are data rather than inline literals so they
// can be tested and extended independently; an Engine takes an immutable
// copy at construction.
type Config struct {
	// VagueLinkPhrases are link texts considered non-descriptive,
	// compared case-insensitively against the full visible text.
	VagueLinkPhrases []string `yaml:"vague_link_phrases"`

	// GenericAltWords are alt texts that describe nothing,
	// compared case-insensitively.
	GenericAltWords []string `yaml:"generic_alt_words"`

	// EquationTerms mark an image as a probable math equation when found
	// in its filename or alt text; such images always need human or AI
	// verification regardless of alt-text quality.
	EquationTerms []string `yaml:"equation_terms"`

	// GenericIframeTitles are iframe titles considered meaningless.
	GenericIframeTitles []string `yaml:"generic_iframe_titles"`

	// IframeDomainTitles maps a substring of an iframe's source host to
	// the title substituted by the fix pass. Sources matching nothing
	// get FallbackIframeTitle.
	IframeDomainTitles map[string]string `yaml:"iframe_domain_titles"`

	// FallbackIframeTitle is used when no domain rule matches.
	FallbackIframeTitle string `yaml:"fallback_iframe_title"`

	// DocumentExtensions are file extensions that flag "filename as link
	// text" and feed link-text suggestions.
	DocumentExtensions []string `yaml:"document_extensions"`

	// MaxFixedWidthPx is the largest pixel width left untouched by the
	// responsive-width conversion. Declared widths above this become
	// `width: 100%; max-width: <N>px`.
	MaxFixedWidthPx int `yaml:"max_fixed_width_px"`

	// MaxHeaderColumns is the widest header row a table may have before
	// the whole table is wrapped in a horizontally scrollable container.
	MaxHeaderColumns int `yaml:"max_header_columns"`

	// CaptionPlaceholder is the generic caption inserted into tables
	// lacking one.
	CaptionPlaceholder string `yaml:"caption_placeholder"`

	// FallbackHeading is used when a document has no headings and no
	// usable <title> to synthesize one from.
	FallbackHeading string `yaml:"fallback_heading"`

	// ContrastTarget is the ratio the Fix pass corrects toward. The
	// fixer always targets normal-text contrast, deliberately stricter
	// than the auditor's large-text exemption.
	ContrastTarget float64 `yaml:"contrast_target"`

	// CodeTheme is the palette applied to pre/code blocks that fail the
	// contrast check, instead of the incremental correction search.
	CodeTheme CodeTheme `yaml:"code_theme"`

	// ConfirmDecorative, when set, is consulted for images with empty
	// alt text and no presentation role: returning true marks the image
	// decorative (role="presentation"). This is an external decision
	// (interactive prompt or policy); nil means never confirm.
	ConfirmDecorative func(src string) bool `yaml:"-"`
}

// CodeTheme is a foreground/background pair for code blocks.
type CodeTheme struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		VagueLinkPhrases: []string{
			"click here", "here", "read more", "more info", "info", "link",
		},
		GenericAltWords: []string{
			"image", "photo", "picture", "spacer", "undefined", "null",
		},
		EquationTerms: []string{
			"eq", "equation", "sigma", "sqrt", "frac", "math", "formula",
		},
		GenericIframeTitles: []string{
			"embedded content", "video", "youtube",
		},
		IframeDomainTitles: map[string]string{
			"youtube": "Embedded YouTube Video",
			"vimeo":   "Embedded Vimeo Video",
			"panopto": "Embedded Panopto Video",
		},
		FallbackIframeTitle: "Embedded Content",
		DocumentExtensions: []string{
			".html", ".pdf", ".docx", ".pptx", ".zip",
		},
		MaxFixedWidthPx:    320,
		MaxHeaderColumns:   4,
		CaptionPlaceholder: "Table",
		FallbackHeading:    "Document",
		ContrastTarget:     4.5,
		CodeTheme: CodeTheme{
			Foreground: "#d4d4d4",
			Background: "#1e1e1e",
		},
	}
}
