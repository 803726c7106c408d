// Package htmldoc implements parsing, manipulation, and serialization of the
// HTML documents produced by office-to-web conversion tools.
//
// This package provides:
//
// - A Document wrapper that owns a mutable golang.org/x/net/html node tree
// - Charset-aware parsing (converted office documents are frequently
//   declared as ISO-8859-1 / windows-1252 rather than UTF-8)
// - Node construction, attribute, and traversal helpers shared by the
//   auditing and remediation passes
//
// A Document is exclusively owned by the caller for the duration of one
// audit or fix cycle. It is re-parsed fresh per file and never shared
// across files.
//
// Main Functions:
//
// - Parse: Parses raw HTML bytes into a Document
// - (*Document).Render: Serializes the tree back to an HTML string
// - FindAll, Elements, Text, GetAttr, SetAttr: tree utilities
package htmldoc
