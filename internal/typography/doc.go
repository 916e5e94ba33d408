// Package typography models the typography section of a brand document:
// font declarations and the per-element text groups.
//
// # Fonts
//
// Each entry of typography.fonts is classified once, while decoding, into one
// of three kinds:
//
//   - google: a family served by Google Fonts (CSS API v2 by default)
//   - bunny: a family served by Bunny Fonts (CSS API v1 by default)
//   - file: a local or remote font file, recognised by its extension
//
// Hosted fonts build their stylesheet import URL with HostedFont.ImportURL.
//
// # Groups
//
// The groups base, headings, monospace, monospace-inline, monospace-block and
// link each accept a fixed set of fields; anything else is rejected. After
// decoding, monospace-inline and monospace-block inherit family, style,
// weight and size from monospace where they leave them unset (see
// Typography.Cascade).
//
// Color fields of the groups hold names or literals as written. Projecting
// the brand color namespace onto them is done by the brand package, which
// walks them through Typography as a refs.Record.
package typography
