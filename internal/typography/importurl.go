package typography

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	errUtils "brand-yml/errors"
)

// ImportURL returns the stylesheet URL that loads the font from its service.
// Weights and styles are de-duplicated and sorted first. Version 1 uses the
// css endpoint, every other version the css2 endpoint.
func (f *HostedFont) ImportURL() (string, error) {
	base, err := url.Parse(f.URL)
	if err != nil {
		return "", errUtils.Wrapf(errUtils.ErrInvalidFontURL, "%q: %v", f.URL, err)
	}

	weights := lo.Uniq(f.Weight)
	slices.Sort(weights)

	var family, endpoint string

	if f.Version == 1 {
		family, endpoint = f.Family+axesV1(weights, f.Style), "css"
	} else {
		family, endpoint = f.Family+axesV2(weights, f.Style), "css2"
	}

	// Parameter order is fixed: family first, then display.
	query := "family=" + url.QueryEscape(family) + "&display=" + url.QueryEscape(string(f.Display))

	ref, err := url.Parse(endpoint + "?" + query)
	if err != nil {
		return "", errUtils.Wrapf(errUtils.ErrInvalidFontURL, "%q: %v", f.Family, err)
	}

	return base.ResolveReference(ref).String(), nil
}

// axesV1 builds the ":values" suffix of the css endpoint: weight-major
// "400,400i,700,700i", bare weights, or "regular"/"italic" for styles only.
func axesV1(weights []int, styles StyleList) string {
	ital := styleTokens(styles, map[Style]string{StyleNormal: "", StyleItalic: "i"})

	var values []string

	switch {
	case len(weights) > 0 && len(ital) > 0:
		for _, w := range weights {
			for _, i := range ital {
				values = append(values, strconv.Itoa(w)+i)
			}
		}
	case len(weights) > 0:
		values = lo.Map(weights, func(w int, _ int) string { return strconv.Itoa(w) })
	case len(ital) > 0:
		values = lo.Map(ital, func(i string, _ int) string {
			if i == "" {
				return "regular"
			}

			return "italic"
		})
	default:
		return ""
	}

	return ":" + strings.Join(values, ",")
}

// axesV2 builds the ":axis@values" suffix of the css2 endpoint. With both
// weights and styles the tuples are style-major "ital,wght@0,400;0,700;1,400".
func axesV2(weights []int, styles StyleList) string {
	ital := styleTokens(styles, map[Style]string{StyleNormal: "0", StyleItalic: "1"})

	var (
		axis   string
		values []string
	)

	switch {
	case len(weights) > 0 && len(ital) > 0:
		axis = "ital,wght"

		for _, i := range ital {
			for _, w := range weights {
				values = append(values, i+","+strconv.Itoa(w))
			}
		}
	case len(weights) > 0:
		axis = "wght"
		values = lo.Map(weights, func(w int, _ int) string { return strconv.Itoa(w) })
	case len(ital) > 0:
		axis = "ital"
		values = ital
	default:
		return ""
	}

	return ":" + axis + "@" + strings.Join(values, ";")
}

// styleTokens maps styles to their URL tokens, de-duplicated and sorted.
func styleTokens(styles StyleList, tokens map[Style]string) []string {
	res := lo.Uniq(lo.Map(styles, func(s Style, _ int) string { return tokens[s] }))
	slices.Sort(res)

	return res
}
