package styled_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/styledid/pkg/identity"
	"github.com/yaklabco/styledid/pkg/langdetect"
	"github.com/yaklabco/styledid/pkg/moduleroot"
	"github.com/yaklabco/styledid/pkg/styled"
)

func newTestPlugin(t *testing.T) *styled.Plugin {
	t.Helper()

	cfg := styled.DefaultPluginConfig()
	cfg.Hasher = fixedHasher()
	plugin, err := styled.NewPlugin(cfg)
	require.NoError(t, err)
	return plugin
}

func TestNewPlugin_InvalidPattern(t *testing.T) {
	t.Parallel()

	for _, cfg := range []styled.PluginConfig{
		{Match: "("},
		{Filter: "[a-"},
		{Exclude: "*"},
	} {
		_, err := styled.NewPlugin(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid")
	}
}

func TestNewPlugin_EmptyPatternsUseDefaults(t *testing.T) {
	t.Parallel()

	plugin, err := styled.NewPlugin(styled.PluginConfig{Options: styled.DefaultOptions()})
	require.NoError(t, err)

	abs, err := filepath.Abs("Button.tsx")
	require.NoError(t, err)
	assert.True(t, plugin.ShouldProcess(abs))
	assert.True(t, plugin.References([]byte("import styled from 'styled-components'")))
}

func TestPlugin_ShouldProcess(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t)
	root, err := filepath.Abs("testdata-root")
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(root, "src", "Button.js"), true},
		{filepath.Join(root, "src", "Button.jsx"), true},
		{filepath.Join(root, "src", "Button.ts"), true},
		{filepath.Join(root, "src", "Button.tsx"), true},
		{filepath.Join(root, "src", "Button.css"), false},
		{filepath.Join(root, "src", "Button.js.map"), false},
		{filepath.Join(root, "node_modules", "lib", "index.js"), false},
		{filepath.Join("src", "Button.js"), false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, plugin.ShouldProcess(tt.path), tt.path)
	}
}

func TestPlugin_Transform(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t)
	src := js("import styled from 'styled-components'\nexport const Title = styled.h1~~\n")

	result, err := plugin.Transform(context.Background(), "/app/src/Page.js", []byte(src))
	require.NoError(t, err)

	want := js("import styled from 'styled-components'\n" +
		"export const Title = styled.h1.withConfig({ componentId: 'sc-abc-0', displayName: 'Page__Title' })~~\n")
	assert.Equal(t, want, string(result.Output))
	assert.True(t, result.Changed())
	assert.Equal(t, langdetect.DialectTSX, result.Dialect)
}

func TestPlugin_TransformWithoutReference(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t)
	src := js("const Title = styled.h1~~\n")

	result, err := plugin.Transform(context.Background(), "/app/src/Page.js", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, string(result.Output))
	assert.False(t, result.Changed())
	assert.False(t, result.ParseFailed)
	assert.Empty(t, result.Sites)
}

func TestPlugin_TransformCancelled(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := plugin.Transform(ctx, "/app/Page.js", []byte("import styled from 'styled-components'\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPlugin_TransformString(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t)

	unchanged := "import styled from 'styled-components'\nconst x = 1\n"
	assert.Equal(t, unchanged, plugin.TransformString("/app/x.js", unchanged))

	broken := js("import styled from 'styled-components'\nconst = styled.p~")
	assert.Equal(t, broken, plugin.TransformString("/app/x.js", broken))

	got := plugin.TransformString("/app/x.js", js("import styled from 'styled-components'\nconst P = styled.p~~\n"))
	assert.Contains(t, got, "styled.p.withConfig({ componentId: 'sc-abc-0', displayName: 'x__P' })")
}

func TestPlugin_HashFromModuleRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"name":"app"}`), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	path := filepath.Join(root, "src", "Button.js")

	cfg := styled.DefaultPluginConfig()
	cfg.Hasher = identity.NewHasher(moduleroot.NewResolver(moduleroot.NewCache()), identity.XXHash)
	plugin, err := styled.NewPlugin(cfg)
	require.NoError(t, err)

	src := js("import styled from 'styled-components'\nconst Button = styled.button~~\n")
	result, err := plugin.Transform(context.Background(), path, []byte(src))
	require.NoError(t, err)
	require.Len(t, result.Sites, 1)

	assert.Equal(t, "sc-"+identity.XXHash("app"+"src/Button.js")+"-0", result.Sites[0].ComponentID)

	// A different source in the same file keeps the same id.
	other := js("import styled from 'styled-components'\n\nconst Button = styled.button~color: red;~\n")
	again, err := plugin.Transform(context.Background(), path, []byte(other))
	require.NoError(t, err)
	require.Len(t, again.Sites, 1)
	assert.Equal(t, result.Sites[0].ComponentID, again.Sites[0].ComponentID)
}

func TestPlugin_MatchFollowsPackage(t *testing.T) {
	t.Parallel()

	cfg := styled.DefaultPluginConfig()
	cfg.Hasher = fixedHasher()
	cfg.Options.Package = "@acme/styled"
	plugin, err := styled.NewPlugin(cfg)
	require.NoError(t, err)

	assert.True(t, plugin.References([]byte("import styled from '@acme/styled'")))
	assert.False(t, plugin.References([]byte("import styled from '@acme-styled'")), "package name is matched literally")

	src := js("import styled from '@acme/styled';\nconst Box = styled.div~a~;\n")
	out := plugin.TransformString("/p/Box.js", src)
	assert.Contains(t, out, "styled.div.withConfig(")

	// An explicit pattern still wins over the package.
	cfg.Match = "never-present"
	narrowed, err := styled.NewPlugin(cfg)
	require.NoError(t, err)
	assert.Equal(t, src, narrowed.TransformString("/p/Box.js", src))
}

func TestPlugin_SyntaxErrorLeavesWholeFile(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t)
	src := js("import styled from 'styled-components'\nconst Good = styled.div~~\nconst = (\n")

	result, err := plugin.Transform(context.Background(), "/p/Mixed.js", []byte(src))
	require.NoError(t, err)
	assert.True(t, result.ParseFailed)
	assert.Empty(t, result.Sites)
	assert.Equal(t, src, string(result.Output))
}
