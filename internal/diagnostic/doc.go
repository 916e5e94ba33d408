// Package diagnostic provides structured, non-fatal findings about a brand
// document.
//
// Diagnostics never block loading. They report things a document author most
// likely wants to know about:
//   - top-level keys that are ignored
//   - typography colors that look like a misspelt color name
//   - font files browsers cannot load
//   - hosted fonts that request no weight or style
package diagnostic
