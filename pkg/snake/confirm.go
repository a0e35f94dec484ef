// Package snake holds the interactive terminal prompts used by the CLI.
package snake

import (
	"fmt"
	"io"
	"strconv"

	"github.com/manifoldco/promptui"
)

var confirmTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} [y/N]: ",
	Valid:   "{{ . | green }} [y/N]: ",
	Invalid: "{{ . | red }} [y/N]: ",
	Success: "{{ . | bold }}: ",
}

// Confirm asks a yes or no question. An empty answer declines.
func Confirm(in io.Reader, out io.Writer, label string) (bool, error) {
	validate := func(input string) error {
		if input == "" {
			return nil
		}
		_, err := ParseBool(input)
		return err
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: confirmTemplates,
		Validate:  validate,
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{out},
	}

	result, err := prompt.Run()
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	if result == "" {
		return false, nil
	}
	yes, _ := ParseBool(result)
	return yes, nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
