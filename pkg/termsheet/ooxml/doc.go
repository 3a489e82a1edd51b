// Package ooxml provides a minimal WordprocessingML document model for
// token substitution. It parses word/document.xml and header/footer parts
// into paragraphs, runs and tables, keeps everything it does not understand
// as raw XML blobs, and serializes back with hand-written writers so the
// preserved blobs round-trip byte for byte.
//
// The model is deliberately lossy only where substitution requires it:
// when a paragraph's text changes, its runs are collapsed into one run
// carrying the first run's font, size, bold and italic.
package ooxml
