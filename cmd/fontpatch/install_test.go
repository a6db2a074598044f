package main

import (
	"strings"
	"testing"

	"github.com/owmods/fontpatch/internal/fonts"
)

func TestRunInstallUnknownOption(t *testing.T) {
	err := runInstall([]string{"--bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown option") {
		t.Fatalf("runInstall() error = %v, want unknown option failure", err)
	}
}

func TestRunInstallHelp(t *testing.T) {
	if err := runInstall([]string{"--help"}); err != nil {
		t.Errorf("runInstall(--help) error = %v", err)
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name     string
		status   fonts.TargetStatus
		expected string
	}{
		{
			name:     "up to date",
			status:   fonts.TargetStatus{Path: "Fonts/NotoSans-Regular.ttf", Action: fonts.ActionUpToDate},
			expected: "Fonts/NotoSans-Regular.ttf: up to date",
		},
		{
			name:     "dry run",
			status:   fonts.TargetStatus{Path: "Fonts/NotoSans-Regular.ttf", Action: fonts.ActionWouldWrite},
			expected: "Would write font to Fonts/NotoSans-Regular.ttf",
		},
		{
			name:     "written",
			status:   fonts.TargetStatus{Path: "Fonts/NotoSans-Regular.ttf", Action: fonts.ActionWrote},
			expected: "Wrote Fonts/NotoSans-Regular.ttf",
		},
		{
			name:     "not processed",
			status:   fonts.TargetStatus{Path: "Fonts/NotoSans-Regular.ttf"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusLine(tt.status); got != tt.expected {
				t.Errorf("statusLine() = %q, want %q", got, tt.expected)
			}
		})
	}
}
