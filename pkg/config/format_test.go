package config_test

import (
	"testing"

	"github.com/yaklabco/styledid/pkg/config"
)

func TestOutputFormat_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format config.OutputFormat
		want   bool
	}{
		{config.FormatText, true},
		{config.FormatTable, true},
		{config.FormatJSON, true},
		{config.FormatDiff, true},
		{config.FormatSummary, true},
		{"sarif", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.format.IsValid(); got != tt.want {
			t.Errorf("OutputFormat(%q).IsValid() = %v, want %v", tt.format, got, tt.want)
		}
	}
}
