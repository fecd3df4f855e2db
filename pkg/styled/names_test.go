package styled_test

import (
	"testing"

	"github.com/yaklabco/styledid/pkg/styled"
)

func TestBlockName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/src/Button.js", "Button"},
		{"/src/components/index.tsx", "components"},
		{"/src/Button.test.js", "Button.test"},
		{"/src/indexed.js", "indexed"},
		{"Button", "Button"},
	}

	for _, tt := range tests {
		if got := styled.BlockName(tt.path, []string{"index"}); got != tt.want {
			t.Errorf("BlockName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	withFile := styled.DefaultOptions()
	withoutFile := styled.DefaultOptions()
	withoutFile.FileName = false
	custom := styled.DefaultOptions()
	custom.MeaninglessFileNames = []string{"index", "styles"}

	tests := []struct {
		name      string
		opts      styled.Options
		path      string
		component string
		want      string
	}{
		{"block and component", withFile, "/src/Card.js", "Title", "Card__Title"},
		{"same name", withFile, "/src/Card.js", "Card", "Card"},
		{"no component", withFile, "/src/Card.js", "", "Card"},
		{"leading digit", withFile, "/src/404.js", "NotFound", "sc-404__NotFound"},
		{"leading digit alone", withFile, "/src/404.js", "", "sc-404"},
		{"file name off", withoutFile, "/src/Card.js", "Title", "Title"},
		{"file name off no component", withoutFile, "/src/Card.js", "", ""},
		{"custom meaningless", custom, "/src/card/styles.js", "Title", "card__Title"},
		{"no path", withFile, "", "Title", "Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := styled.DisplayName(tt.opts, tt.path, tt.component); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
