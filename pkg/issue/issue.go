// Package issue provides the data structures exchanged with the issue client.
package issue

import (
	"fmt"
	"strings"
)

// Type is the GitHub issue type attached at creation time.
type Type string

// Supported issue types.
const (
	TypeNone    Type = ""
	TypeBug     Type = "Bug"
	TypeFeature Type = "Feature"
	TypeTask    Type = "Task"
)

// ParseType parses an issue type case-insensitively. An empty string yields
// TypeNone.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TypeNone, nil
	case "bug":
		return TypeBug, nil
	case "feature":
		return TypeFeature, nil
	case "task":
		return TypeTask, nil
	}
	return TypeNone, fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Draft is an issue that has not been submitted yet.
type Draft struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
	Type      Type
}

// Issue is an issue record returned by the forge.
type Issue struct {
	Number      int      `yaml:"number" json:"number"`
	Title       string   `yaml:"title" json:"title"`
	Body        string   `yaml:"body,omitempty" json:"body,omitempty"`
	State       string   `yaml:"state" json:"state"`
	HTMLURL     string   `yaml:"html_url" json:"html_url"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	Labels      []string `yaml:"labels,omitempty" json:"labels,omitempty"`
	Assignees   []string `yaml:"assignees,omitempty" json:"assignees,omitempty"`
	PullRequest bool     `yaml:"pull_request,omitempty" json:"pull_request,omitempty"`
}

// Label is a repository label.
type Label struct {
	Name        string `yaml:"name" json:"name"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Collaborator is a user with access to the repository.
type Collaborator struct {
	Login   string `yaml:"login" json:"login"`
	HTMLURL string `yaml:"html_url,omitempty" json:"html_url,omitempty"`
}

// Issue states accepted when listing.
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateAll    = "all"
)

// ValidState reports whether state is open, closed or all.
func ValidState(state string) bool {
	switch state {
	case StateOpen, StateClosed, StateAll:
		return true
	}
	return false
}

// SplitList splits comma-separated user input, trimming every item and
// dropping empty ones.
func SplitList(text string) []string {
	items := []string{}
	for _, item := range strings.Split(text, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
