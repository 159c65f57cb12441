package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"gopkg.in/yaml.v3"
)

// Format is a batch document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Entry is one element of a batch document.
type Entry struct {
	Title     string   `json:"title" yaml:"title"`
	Body      string   `json:"body" yaml:"body"`
	Labels    []string `json:"labels" yaml:"labels"`
	Assignees []string `json:"assignees" yaml:"assignees"`
}

// FormatFromPath returns the format matching the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Marshal encodes drafts as a document. Lists are always present, empty or not.
func Marshal(drafts []issue.Draft, format Format) ([]byte, error) {
	entries := make([]Entry, 0, len(drafts))
	for _, d := range drafts {
		entries = append(entries, Entry{
			Title:     d.Title,
			Body:      d.Body,
			Labels:    append([]string{}, d.Labels...),
			Assignees: append([]string{}, d.Assignees...),
		})
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// Unmarshal decodes a document. Missing lists decode as empty lists.
func Unmarshal(data []byte, format Format) ([]issue.Draft, error) {
	var entries []Entry

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDocumentParse, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDocumentParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	drafts := make([]issue.Draft, 0, len(entries))
	for _, e := range entries {
		drafts = append(drafts, issue.Draft{
			Title:     e.Title,
			Body:      e.Body,
			Labels:    append([]string{}, e.Labels...),
			Assignees: append([]string{}, e.Assignees...),
		})
	}

	return drafts, nil
}
