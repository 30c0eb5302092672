package main

import (
	"strings"
	"testing"
)

func TestResolveBudget_FlagValues(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 1000, false},
		{"explicit zero", 0, true},
		{"negative", -50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveBudget(tt.value, true, strings.NewReader(""))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("budget %v must be rejected, got %v", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.value {
				t.Errorf("expected %v, got %v", tt.value, got)
			}
		})
	}
}

func TestResolveBudget_Prompt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"valid", "1000\n", 1000, false},
		{"trimmed", "  250.50 \n", 250.50, false},
		{"garbage", "a lot\n", 0, true},
		{"zero", "0\n", 0, true},
		{"negative", "-5\n", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveBudget(0, false, strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("input %q must be rejected, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
