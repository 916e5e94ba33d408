// Package render turns a validated brand into output for downstream tools.
//
// CSS renders a stylesheet with text/template:
//   - an @import rule per hosted font
//   - an @font-face rule per web-loadable font file
//   - :root custom properties for the palette, the theme colors and every
//     typography group
//
// Show renders a terminal preview of the same data with lipgloss.
package render
