// Package color holds the brand color record: a named palette plus the fixed
// set of semantic theme slots (primary, danger, ...).
//
// Palette entries may refer to other palette entries by name, and theme slots
// may refer to palette entries or to other slots. Both layers share one
// namespace, with slot values overlaid on top of the palette:
//
//	color:
//	  palette:
//	    purple: "#6339E0"
//	    brand: purple
//	  primary: brand
//	  secondary: primary
//
// After validation every slot holds a literal (primary and secondary are both
// "#6339E0" above) and the palette is internally resolved. The authored
// values are retained, so assigning a new palette or slot re-runs the whole
// validation against them.
package color
