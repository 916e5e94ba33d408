package brand

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/samber/lo"

	"brand-yml/internal/diagnostic"
	"brand-yml/internal/match"
)

// Check reports non-fatal findings about a validated brand.
func Check(b *Brand) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	checkExtra(b, &d)
	checkTypographyColors(b, &d)
	checkFonts(b, &d)
	checkLogo(b, &d)

	return d
}

// checkExtra reports top-level keys that are not part of a brand document.
func checkExtra(b *Brand, d *diagnostic.Diagnostics) {
	keys := lo.Keys(b.Extra)
	slices.Sort(keys)

	for _, key := range keys {
		d.AddInfo(diagnostic.CodeIgnoredField,
			fmt.Sprintf("unknown top-level key %q is ignored", key), "", key)
	}
}

// checkTypographyColors reports typography colors that were kept as literals
// although they are close to a name of the color namespace.
func checkTypographyColors(b *Brand, d *diagnostic.Diagnostics) {
	ns := b.ColorNamespace()
	names := ns.Keys()

	for _, cf := range b.Typography.ColorFields() {
		authored, ok := b.TypographyColor(cf.Path())
		if !ok || ns.Has(authored) || looksLikeColorValue(authored) {
			continue
		}

		suggestions := match.Suggest(authored, names, suggestDistance)
		if len(suggestions) == 0 {
			continue
		}

		d.AddWarning(diagnostic.CodeNearMissColor,
			fmt.Sprintf("%q is not a color name and is used as a literal color", authored),
			"typography", cf.Path(), suggestions...)
	}
}

// looksLikeColorValue is true for hex colors and CSS color functions.
func looksLikeColorValue(s string) bool {
	return strings.HasPrefix(s, "#") || strings.Contains(s, "(")
}

// checkFonts reports font files browsers cannot load and hosted fonts that
// request no weight and no style.
func checkFonts(b *Brand, d *diagnostic.Diagnostics) {
	if b.Typography == nil {
		return
	}

	for i, f := range b.Typography.Fonts {
		field := fmt.Sprintf("typography.fonts[%d]", i)

		switch {
		case f.File != nil:
			if _, err := f.File.Format(); err != nil {
				d.AddWarning(diagnostic.CodeNonWebFontFile, err.Error(), "typography", field)
			}
		case f.Hosted != nil:
			if len(f.Hosted.Weight) == 0 && len(f.Hosted.Style) == 0 {
				d.AddInfo(diagnostic.CodeFontWithoutAxes,
					fmt.Sprintf("%s font %q requests no weight and no style; the service default is used",
						f.Hosted.Source, f.Hosted.Family),
					"typography", field)
			}
		}
	}
}

// checkLogo reports logo sizes that look like image names but match none.
func checkLogo(b *Brand, d *diagnostic.Diagnostics) {
	if b.Logo == nil || b.Logo.Images == nil {
		return
	}

	names := b.Logo.Images.Keys()

	for _, size := range []string{LogoSmall, LogoMedium, LogoLarge} {
		authored, ok := b.Logo.Authored(size)
		if !ok || b.Logo.Images.Has(authored) || path.Ext(authored) != "" {
			continue
		}

		d.AddWarning(diagnostic.CodeUnresolvedLogoRef,
			fmt.Sprintf("%q names no logo image and has no file extension", authored),
			"logo", "logo."+size, match.Suggest(authored, names, suggestDistance)...)
	}
}
