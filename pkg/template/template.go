// Package template provides the built-in issue templates.
package template

import (
	"fmt"
	"strings"

	"github.com/lerenn/gh-issue-generator/pkg/issue"
)

// Key identifies a template.
type Key string

// Template keys.
const (
	KeyBug           Key = "bug"
	KeyFeature       Key = "feature"
	KeyDocumentation Key = "documentation"
)

// Template is a pre-filled draft: a prefixed title to complete, a Markdown
// body with placeholder sections, a default label and issue type.
type Template struct {
	Key         Key
	Name        string
	TitlePrefix string
	Body        string
	Label       string
	Type        issue.Type
}

// Draft returns a draft pre-filled from the template.
func (t Template) Draft() issue.Draft {
	return issue.Draft{
		Title:     t.TitlePrefix,
		Body:      t.Body,
		Labels:    []string{t.Label},
		Assignees: []string{},
		Type:      t.Type,
	}
}

// Draft returns a draft for the template key, with the title appended to
// the prefix.
func Draft(key Key, title string) (issue.Draft, error) {
	t, err := Get(key)
	if err != nil {
		return issue.Draft{}, err
	}

	draft := t.Draft()
	draft.Title += strings.TrimSpace(title)
	return draft, nil
}

// Get returns the template for key.
func Get(key Key) (Template, error) {
	for _, t := range catalog {
		if t.Key == key {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, key)
}

// Parse parses a template key case-insensitively.
func Parse(s string) (Key, error) {
	t, err := Get(Key(strings.ToLower(strings.TrimSpace(s))))
	if err != nil {
		return "", err
	}
	return t.Key, nil
}

// All returns the catalog in display order.
func All() []Template {
	all := make([]Template, len(catalog))
	copy(all, catalog)
	return all
}

// Keys returns the template keys in display order.
func Keys() []Key {
	keys := make([]Key, 0, len(catalog))
	for _, t := range catalog {
		keys = append(keys, t.Key)
	}
	return keys
}

var catalog = []Template{
	{
		Key:         KeyBug,
		Name:        "Bug",
		TitlePrefix: "[Bug] ",
		Label:       "bug",
		Type:        issue.TypeBug,
		Body: "## Bug description\n" +
			"Describe the bug clearly and precisely.\n\n" +
			"## Steps to reproduce\n" +
			"1. \n2. \n3. \n\n" +
			"## Expected behavior\n" +
			"Describe what should normally happen.\n\n" +
			"## Actual behavior\n" +
			"Describe what currently happens.\n\n" +
			"## Environment\n" +
			"- OS: [e.g. Windows 10]\n" +
			"- Browser: [e.g. Chrome 96]\n" +
			"- Version: [e.g. 1.0.0]\n\n" +
			"## Screenshots\n" +
			"If applicable, add screenshots to illustrate the problem.\n\n" +
			"## Error logs\n" +
			"```\nPaste error logs here if available\n```\n\n" +
			"## Additional information\n" +
			"Any other context useful to understand and fix the bug.",
	},
	{
		Key:         KeyFeature,
		Name:        "Feature",
		TitlePrefix: "[Feature] ",
		Label:       "enhancement",
		Type:        issue.TypeFeature,
		Body: "## User story\n" +
			"As a [type of user]\n" +
			"I want [desired action or feature]\n" +
			"So that [benefit or goal]\n\n" +
			"## Proposed technical solution\n" +
			"Describe in detail how the feature should be implemented.\n\n" +
			"## Additional information\n" +
			"Any other useful context or screenshot.",
	},
	{
		Key:         KeyDocumentation,
		Name:        "Documentation",
		TitlePrefix: "[Documentation] ",
		Label:       "documentation",
		Type:        issue.TypeTask,
		Body: "## Description\n" +
			"Describe what must be documented or the changes to make.\n\n" +
			"## Affected sections\n" +
			"- Section 1\n- Section 2\n\n" +
			"## Proposed changes\n" +
			"Detail the changes or additions to the documentation.\n\n" +
			"## Points to cover\n" +
			"- [ ] Point 1\n- [ ] Point 2\n- [ ] Point 3\n\n" +
			"## Useful resources\n" +
			"- Link 1\n- Link 2\n\n" +
			"## Additional information\n" +
			"Any other relevant context.",
	},
}
