package main

import (
	"errors"
	"testing"
)

func TestPickedValue(t *testing.T) {
	menuErr := errors.New("no menu items")

	tests := []struct {
		name    string
		value   any
		err     error
		want    string
		wantErr error
	}{
		{"chosen", "p1", nil, "p1", nil},
		{"escape", "", nil, "", errCancelled},
		{"nothing returned", nil, nil, "", errCancelled},
		{"menu error", nil, menuErr, "", menuErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pickedValue(tt.value, tt.err)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatusOptions(t *testing.T) {
	opts := statusOptions([]string{"pending", "in_progress"})
	if len(opts) != 2 || opts[1].Label != "in progress" || opts[1].Value != "in_progress" {
		t.Errorf("unexpected options: %+v", opts)
	}
}
