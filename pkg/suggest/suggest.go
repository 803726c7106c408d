// Package suggest provides the optional AI-backed alt-text suggestion
// collaborator and the persistent suggestion memory.
//
// The Client OCRs image bytes through a Google Document AI processor and
// condenses the recognized text into an alt-text candidate; images that
// look like rendered math come back as a verbatim transcription for
// LaTeX conversion. Calls are rate limited, retried with exponential
// backoff on failure, and bounded: a suggestion that cannot be obtained
// is reported as unavailable, never fatal. The audit/fix engine functions
// fully without this package.
//
// Memory is a small SQLite store interactive callers consult before
// prompting, keyed by normalized filename and file size so the same
// image pasted into many documents is only described once.
//
// Usage Requirements:
//
// - Google Cloud project with Document AI API enabled
// - Document AI processor configured for OCR
// - Authentication via GOOGLE_APPLICATION_CREDENTIALS environment variable
package suggest
