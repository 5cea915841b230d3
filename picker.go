package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nexidian/gocliselect"
)

var errCancelled = errors.New("selection cancelled")

type Option struct {
	Label string
	Value string
}

// Picker asks the user to choose one of options and returns its value.
type Picker interface {
	Pick(prompt string, options []Option) (string, error)
}

type menuPicker struct{}

func (menuPicker) Pick(prompt string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errors.New("nothing to choose from")
	}

	menu := gocliselect.NewMenu(prompt)
	for _, o := range options {
		menu.AddItem(o.Label, o.Value)
	}

	return pickedValue(menu.Display())
}

// pickedValue reads the result of a menu. Escape leaves an empty value.
func pickedValue(v any, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("menu failed: %w", err)
	}
	s, _ := v.(string)
	if s == "" {
		return "", errCancelled
	}
	return s, nil
}

func statusOptions(values []string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Label: strings.ReplaceAll(v, "_", " "), Value: v})
	}
	return opts
}
