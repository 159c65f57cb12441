package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Choice is a selectable entry.
type Choice struct {
	Key    string
	Label  string
	Detail string // optional, displayed after the label
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptForText prompts the user for a line of text. Empty input keeps defaultValue.
	PromptForText(label, defaultValue string) (string, error)

	// PromptSelect prompts the user to pick one of choices.
	PromptSelect(title string, choices []Choice) (Choice, error)
}

type realPrompt struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompt creates a new Prompt instance reading stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	defaultText := "[y/N]"
	if defaultYes {
		defaultText = "[Y/n]"
	}

	input, err := p.readLine(fmt.Sprintf("%s %s: ", message, defaultText))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptForText prompts the user for a line of text.
func (p *realPrompt) PromptForText(label, defaultValue string) (string, error) {
	question := label + ": "
	if defaultValue != "" {
		question = fmt.Sprintf("%s [default: %s]: ", label, defaultValue)
	}

	input, err := p.readLine(question)
	if err != nil {
		return "", err
	}

	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// PromptSelect prompts the user to pick one of choices.
func (p *realPrompt) PromptSelect(title string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}

	return promptSelectBubbleTea(title, choices)
}

func (p *realPrompt) readLine(question string) (string, error) {
	fmt.Fprint(p.writer, question)

	input, err := p.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.TrimSpace(input), nil
}
