// Package a11y implements the accessibility audit and remediation engine
// for converted HTML documents.
//
// The engine runs two independent passes over a parsed document tree:
//
// - Audit: a read-only pass that classifies accessibility problems
//   (contrast failures, broken heading hierarchy, table structure, missing
//   or weak alt text, vague link text, untitled iframes, deprecated markup,
//   missing viewport, uncaptioned media) into technical and subjective
//   Issue records. Audit never mutates the document.
// - Fix: a mutating pass that repairs what can be repaired mechanically
//   (heading levels, table structure, fixed widths, justified text, tiny
//   fonts, failing contrast, iframe titles, deprecated tags, bare emoji)
//   and returns the serialized result plus one Fix record per mutation.
//
// The Fix pass is idempotent: running it over its own output applies no
// further mutation and yields an empty fix list. Every individual step
// checks document state before mutating.
//
// Heuristic word lists, structural limits, and the code-block color theme
// live in a Config value passed to New; the engine holds no mutable
// package-level state.
//
// Main Types and Functions:
//
// - Engine: the configured audit/fix orchestrator
// - New: constructs an Engine from a Config
// - (*Engine).Audit: read-only issue classification for one document
// - (*Engine).Fix: in-place remediation of one document
// - Issue, Fix, Result: the records the two passes produce
package a11y
