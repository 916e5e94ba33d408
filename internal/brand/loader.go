package brand

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
)

// ProjectFileName is the brand file searched for when loading a directory.
const ProjectFileName = "_brand.yml"

// LoadFile loads and validates a brand file. path may name the file itself or
// a directory, in which case _brand.yml is searched for in that directory and
// its parents.
func LoadFile(path string) (*Brand, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brand file %s: %w", path, err)
	}

	if info.IsDir() {
		path, err = FindProjectFile(ProjectFileName, path)
		if err != nil {
			return nil, err
		}
	}

	log.Debug("Loading brand file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brand file %s: %w", path, err)
	}

	b, err := Parse(data)
	if err != nil {
		return nil, errUtils.Wrapf(err, "invalid brand file %s", path)
	}

	b.Path = path

	return b, nil
}

// FindProjectFile looks for a file called name in dir and then in each parent
// of dir, returning the first match.
func FindProjectFile(name, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for current := abs; ; {
		candidate := filepath.Join(current, name)

		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			log.Debug("Found brand file", "path", candidate)
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}

		current = parent
	}

	return "", errUtils.Build(errUtils.Wrapf(errUtils.ErrBrandFileNotFound, "%s in %s or any parent directory", name, abs)).
		WithHintf("create %s or pass the path of a brand file", name).
		Err()
}

// Parse parses and validates YAML data into a Brand.
func Parse(data []byte) (*Brand, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse brand YAML: %w", err)
	}

	return FromNode(&doc)
}

// FromNode validates a decoded YAML document or mapping node into a Brand.
func FromNode(node *yaml.Node) (*Brand, error) {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, errUtils.Wrapf(errUtils.ErrInvalidDocument, "empty document")
		}

		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return nil, errUtils.Wrapf(errUtils.ErrInvalidDocument, "line %d: the document must be a mapping", node.Line)
	}

	var b Brand

	err := node.Decode(&b)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// FromMap validates a generic mapping, shaped like a brand document, into a
// Brand.
func FromMap(m map[string]any) (*Brand, error) {
	var node yaml.Node

	err := node.Encode(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode brand: %w", err)
	}

	return FromNode(&node)
}

// Marshal serializes a Brand to YAML.
func Marshal(b *Brand) ([]byte, error) {
	return yaml.Marshal(b)
}

// WriteFile writes a Brand to the given path.
func WriteFile(b *Brand, path string) error {
	data, err := Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal brand: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write brand file %s: %w", path, err)
	}

	return nil
}
