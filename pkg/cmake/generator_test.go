package cmake

import (
	"strings"
	"testing"
)

func TestChooseGenerator_PriorityOrder(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		want      string
	}{
		{
			name:      "prefers Ninja Multi-Config over everything",
			available: []string{"Unix Makefiles", "Ninja", "Ninja Multi-Config"},
			want:      "Ninja Multi-Config",
		},
		{
			name:      "prefers Ninja over Unix Makefiles",
			available: []string{"Unix Makefiles", "Ninja"},
			want:      "Ninja",
		},
		{
			name:      "falls back to Unix Makefiles",
			available: []string{"Watcom WMake", "Unix Makefiles"},
			want:      "Unix Makefiles",
		},
		{
			name:      "falls back to MinGW Makefiles",
			available: []string{"MinGW Makefiles", "NMake Makefiles"},
			want:      "MinGW Makefiles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChooseGenerator(tt.available, "")
			if err != nil {
				t.Fatalf("ChooseGenerator() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ChooseGenerator(%v) = %q, want %q", tt.available, got, tt.want)
			}
		})
	}
}

func TestChooseGenerator_NonePreferred(t *testing.T) {
	_, err := ChooseGenerator([]string{"Watcom WMake"}, "")
	if err == nil {
		t.Fatal("ChooseGenerator() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "no suitable CMake generator") {
		t.Errorf("error = %q, want mention of no suitable generator", err)
	}
}

func TestChooseGenerator_Override(t *testing.T) {
	available := []string{"Ninja Multi-Config", "Ninja", "Unix Makefiles"}

	got, err := ChooseGenerator(available, "Unix Makefiles")
	if err != nil {
		t.Fatalf("ChooseGenerator() error = %v", err)
	}
	if got != "Unix Makefiles" {
		t.Errorf("ChooseGenerator() = %q, want override %q", got, "Unix Makefiles")
	}
}

func TestChooseGenerator_OverrideUnavailable(t *testing.T) {
	_, err := ChooseGenerator([]string{"Ninja"}, "Xcode")
	if err == nil {
		t.Fatal("ChooseGenerator() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "Xcode") || !strings.Contains(err.Error(), "Ninja") {
		t.Errorf("error = %q, want mention of the override and the available set", err)
	}
}

func TestChooseGenerator_Deterministic(t *testing.T) {
	available := []string{"Unix Makefiles", "Ninja Multi-Config", "Ninja"}

	first, err := ChooseGenerator(available, "")
	if err != nil {
		t.Fatalf("ChooseGenerator() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := ChooseGenerator(available, "")
		if err != nil {
			t.Fatalf("ChooseGenerator() error = %v", err)
		}
		if got != first {
			t.Fatalf("ChooseGenerator() = %q on iteration %d, want stable %q", got, i, first)
		}
	}
}

func TestIsMultiConfig(t *testing.T) {
	tests := []struct {
		generator string
		want      bool
	}{
		{"Ninja Multi-Config", true},
		{"Visual Studio 17 2022", true},
		{"Ninja", false},
		{"Unix Makefiles", false},
		{"MinGW Makefiles", false},
	}

	for _, tt := range tests {
		if got := IsMultiConfig(tt.generator); got != tt.want {
			t.Errorf("IsMultiConfig(%q) = %v, want %v", tt.generator, got, tt.want)
		}
	}
}
