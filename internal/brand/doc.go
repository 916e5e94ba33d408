// Package brand loads and validates brand documents (_brand.yml).
//
// Validation runs in document order:
//
//  1. color: the palette and theme slots are cycle checked and resolved to
//     literals (see package color);
//  2. typography: fonts are classified, groups decoded strictly and the
//     monospace cascade applied (see package typography);
//  3. typography colors naming an entry of the resolved color namespace are
//     replaced by its literal. A name of a theme slot the color section does
//     not define is an error.
//
// The authored typography colors are retained, so SetColor re-projects them
// against the new color record.
//
// Check reports findings that do not invalidate the document, such as
// ignored top-level keys or colors that look like a misspelt name.
package brand
