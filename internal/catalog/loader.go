package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

// ErrUnsupportedFormat is returned for catalog files whose format_version
// major differs from SupportedMajor.
var ErrUnsupportedFormat = errors.New("unsupported catalog format version")

//go:embed default.yaml
var defaultCatalog []byte

// file is the on-disk catalog layout. JSON files parse too since YAML is a
// superset of JSON.
type file struct {
	FormatVersion string         `yaml:"format_version"`
	Domains       []domainFile   `yaml:"domains"`
	Questions     []questionFile `yaml:"questions"`
}

type domainFile struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Skills      []string `yaml:"skills"`
}

type questionFile struct {
	ID         string   `yaml:"id"`
	Skill      string   `yaml:"skill"`
	Type       string   `yaml:"type"`
	Difficulty string   `yaml:"difficulty"`
	Text       string   `yaml:"text"`
	FollowUps  []string `yaml:"follow_ups"`
}

// Default returns the built-in catalog shipped with the binary.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("load built-in catalog: %w", err)
	}
	return c, nil
}

// Load reads and parses a catalog file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML or JSON catalog document. The document is checked
// against the catalog schema, its format version is checked for
// compatibility, and the result is structurally validated.
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	// Round-trip through JSON so the schema validator sees JSON types.
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert document to JSON: %w", err)
	}
	var doc any
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return nil, fmt.Errorf("convert document to JSON: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := checkFormatVersion(f.FormatVersion); err != nil {
		return nil, err
	}

	domains := make([]Domain, len(f.Domains))
	for i, d := range f.Domains {
		domains[i] = Domain{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Icon:        d.Icon,
			Skills:      d.Skills,
		}
	}

	questions := make([]Question, len(f.Questions))
	for i, q := range f.Questions {
		questions[i] = Question{
			ID:         q.ID,
			Text:       q.Text,
			Type:       QuestionType(q.Type),
			Difficulty: Difficulty(q.Difficulty),
			Skill:      q.Skill,
			FollowUps:  q.FollowUps,
		}
	}

	return New(f.FormatVersion, domains, questions)
}

// checkFormatVersion rejects versions that are not valid semver or whose
// major does not match SupportedMajor.
func checkFormatVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedFormat, v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("%w: %s (this build reads %s.x)", ErrUnsupportedFormat, v, SupportedMajor)
	}
	return nil
}
