package typography

import (
	"path"

	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
)

// Classify decides which kind of font declaration v is. v may already be a
// decoded declaration (Font, HostedFont, FileFont or a pointer to one), a raw
// mapping (map[string]any) or a YAML mapping node.
//
// Raw declarations are classified by their source: "google" and "bunny" name
// the hosted services, and a path with a known font file extension is a file
// font. The extension check is case sensitive. Anything else yields an
// *errors.UnsupportedFontSourceError.
func Classify(v any) (FontKind, error) {
	switch t := v.(type) {
	case Font:
		return t.Kind, nil
	case *Font:
		if t != nil {
			return t.Kind, nil
		}
	case HostedFont:
		return hostedKind(t)
	case *HostedFont:
		if t != nil {
			return hostedKind(*t)
		}
	case FileFont, *FileFont:
		return FontKindFile, nil
	case map[string]any:
		return classifySource(t["source"])
	case *yaml.Node:
		if t != nil && t.Kind == yaml.MappingNode {
			src, ok := mappingValue(t, "source")
			if !ok || src.Kind != yaml.ScalarNode {
				return 0, &errUtils.UnsupportedFontSourceError{Source: nil}
			}

			return classifySource(src.Value)
		}
	}

	return 0, &errUtils.UnsupportedFontSourceError{Source: v}
}

func hostedKind(f HostedFont) (FontKind, error) {
	if !f.Source.IsHosted() {
		return 0, &errUtils.UnsupportedFontSourceError{Source: f.Source.String()}
	}

	return f.Source, nil
}

func classifySource(src any) (FontKind, error) {
	s, ok := src.(string)
	if !ok {
		return 0, &errUtils.UnsupportedFontSourceError{Source: src}
	}

	switch s {
	case FontKindGoogle.String():
		return FontKindGoogle, nil
	case FontKindBunny.String():
		return FontKindBunny, nil
	}

	if _, ok := fontFormats[path.Ext(s)]; ok {
		return FontKindFile, nil
	}

	return 0, &errUtils.UnsupportedFontSourceError{Source: s}
}
