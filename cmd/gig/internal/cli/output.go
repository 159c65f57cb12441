package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/gh-issue-generator/pkg/forge"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/template"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stateStyles  = map[string]lipgloss.Style{
		issue.StateOpen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		issue.StateClosed: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
)

// Successf prints a success line unless Quiet is set.
func Successf(w io.Writer, format string, args ...any) {
	if Quiet {
		return
	}
	fmt.Fprintln(w, successStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

// Failuref prints a failure line.
func Failuref(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, failureStyle.Render("✗")+" "+fmt.Sprintf(format, args...))
}

// Heading renders a section title.
func Heading(text string) string {
	return headingStyle.Render(text)
}

// Muted renders secondary text.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// DescribeError formats err for the terminal. API errors show the status
// code and the raw response body.
func DescribeError(err error) string {
	if err == nil {
		return "unknown error"
	}

	var apiErr *forge.APIError
	if errors.As(err, &apiErr) {
		body := strings.TrimSpace(apiErr.Body)
		if body == "" {
			return fmt.Sprintf("HTTP %d", apiErr.StatusCode)
		}
		return fmt.Sprintf("HTTP %d: %s", apiErr.StatusCode, body)
	}

	return err.Error()
}

// FormatIssue returns the listing line of an issue.
func FormatIssue(i issue.Issue) string {
	state := i.State
	if style, ok := stateStyles[state]; ok {
		state = style.Render(state)
	}

	kind := ""
	if i.PullRequest {
		kind = " " + Muted("(pull request)")
	}

	return fmt.Sprintf("#%d [%s] %s%s\n    %s", i.Number, state, i.Title, kind, Muted(i.HTMLURL))
}

// FormatDraft returns the listing line of a pending draft, numbered from 1.
func FormatDraft(position int, d issue.Draft) string {
	var details []string
	if len(d.Labels) > 0 {
		details = append(details, "labels: "+strings.Join(d.Labels, ", "))
	}
	if len(d.Assignees) > 0 {
		details = append(details, "assignees: "+strings.Join(d.Assignees, ", "))
	}

	line := fmt.Sprintf("%d. %s", position, d.Title)
	if len(details) > 0 {
		line += " " + Muted("("+strings.Join(details, "; ")+")")
	}
	return line
}

// ParseEntryNumber parses a 1-based batch entry number into an index.
func ParseEntryNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEntryNumber, arg)
	}
	return n - 1, nil
}

// RedactToken hides all but the last four characters of token.
func RedactToken(token string) string {
	if token == "" {
		return "<unset>"
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

// RequestError wraps the error of a failed listing.
func RequestError(err error) error {
	return fmt.Errorf("%w: %s", ErrRequestFailed, DescribeError(err))
}

// TemplateFlagUsage describes the --template flag.
func TemplateFlagUsage() string {
	keys := template.Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, string(k))
	}
	return "Template to start from (" + strings.Join(names, ", ") + ")"
}
