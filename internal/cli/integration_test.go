package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/styledid/internal/cli"
	"github.com/yaklabco/styledid/pkg/fsutil"
)

const buttonSource = "import styled from 'styled-components';\n" +
	"const Title = styled.h1`color: red;`;\n"

const plainSource = "export const answer = 42;\n"

// fixture writes files into a fresh directory along with an explicit
// config so that no project or user config leaks into the test.
func fixture(t *testing.T, files map[string]string, config string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfgFile := filepath.Join(dir, ".styledid.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(config), 0o644))
	return dir, cfgFile
}

// execute runs the root command and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func TestIntegration_TransformReportsSites(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "ssr: true\n")
	file := filepath.Join(dir, "Button.js")

	output, err := execute(t, "transform", "--config", cfgFile, "--color", "never", file)
	require.NoError(t, err)

	assert.Contains(t, output, "Button__Title")
	assert.Contains(t, output, "sc-")
	assert.Contains(t, output, "(tagged-member)")
	assert.Contains(t, output, "1 component in 1 file")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, buttonSource, string(content), "report mode must not touch files")
}

func TestIntegration_CheckFailsOnChanges(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{
		"Button.js": buttonSource,
		"util.js":   plainSource,
	}, "ssr: true\n")

	_, err := execute(t, "transform", "--check", "--config", cfgFile, "--color", "never",
		filepath.Join(dir, "Button.js"))
	require.ErrorIs(t, err, cli.ErrChangesFound)
	assert.Equal(t, cli.ExitChanges, cli.ExitCode(err))
	assert.True(t, cli.IsSilent(err))

	_, err = execute(t, "transform", "--check", "--config", cfgFile, "--color", "never",
		filepath.Join(dir, "util.js"))
	require.NoError(t, err)
}

func TestIntegration_WriteRewritesInPlace(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "ssr: true\n")
	file := filepath.Join(dir, "Button.js")

	_, err := execute(t, "transform", "--write", "--config", cfgFile, "--color", "never", file)
	require.NoError(t, err)

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), "styled.h1.withConfig({ componentId: 'sc-")
	assert.Contains(t, string(content), "displayName: 'Button__Title' })`color: red;`")

	backup, err := os.ReadFile(file + fsutil.BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, buttonSource, string(backup))
}

func TestIntegration_WriteWithoutBackups(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "backups:\n  mode: none\n")
	file := filepath.Join(dir, "Button.js")

	_, err := execute(t, "transform", "--write", "--config", cfgFile, file)
	require.NoError(t, err)

	_, err = os.Stat(file + fsutil.BackupSuffix)
	assert.True(t, os.IsNotExist(err), "no backup expected, got %v", err)
}

func TestIntegration_DiffFormat(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "namespace: app\n")

	output, err := execute(t, "transform", "--diff", "--config", cfgFile, "--color", "never",
		filepath.Join(dir, "Button.js"))
	require.NoError(t, err)

	assert.Contains(t, output, "-const Title = styled.h1`color: red;`;")
	assert.Contains(t, output, "+const Title = styled.h1.withConfig({ componentId: 'app__sc-")
	assert.Contains(t, output, "1 file changed")
}

func TestIntegration_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "namespace: app\n")

	output, err := execute(t, "transform", "--format", "diff", "--no-ssr", "--namespace", "web",
		"--config", cfgFile, "--color", "never", filepath.Join(dir, "Button.js"))
	require.NoError(t, err)

	assert.Contains(t, output, "+const Title = styled.h1.withConfig({ displayName: 'Button__Title' })")
	assert.NotContains(t, output, "componentId")
}

func TestIntegration_JSONFormat(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "ssr: true\n")

	output, err := execute(t, "transform", "--format", "json", "--config", cfgFile,
		filepath.Join(dir, "Button.js"))
	require.NoError(t, err)

	var report struct {
		Sites []struct {
			DisplayName string `json:"displayName"`
			ComponentID string `json:"componentId"`
			Shape       string `json:"shape"`
		} `json:"sites"`
		Summary struct {
			FilesChanged int `json:"filesChanged"`
			Sites        int `json:"sites"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &report), "output: %s", output)

	require.Len(t, report.Sites, 1)
	assert.Equal(t, "Button__Title", report.Sites[0].DisplayName)
	assert.True(t, strings.HasPrefix(report.Sites[0].ComponentID, "sc-"))
	assert.Equal(t, "tagged-member", report.Sites[0].Shape)
	assert.Equal(t, 1, report.Summary.FilesChanged)
	assert.Equal(t, 1, report.Summary.Sites)
}

func TestIntegration_SummaryFormat(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "ssr: true\n")

	output, err := execute(t, "transform", "--format", "summary", "--config", cfgFile, "--color", "never",
		filepath.Join(dir, "Button.js"))
	require.NoError(t, err)

	assert.Contains(t, output, "Files Summary")
	assert.Contains(t, output, "Display Names")
	assert.Contains(t, output, "Total:")
}

func TestIntegration_ParseFailureLeavesFileUnchanged(t *testing.T) {
	t.Parallel()

	broken := "import styled from 'styled-components';\nconst A = styled.div`x`;\nconst = ;\n"
	dir, cfgFile := fixture(t, map[string]string{"Broken.js": broken}, "ssr: true\n")
	file := filepath.Join(dir, "Broken.js")

	output, err := execute(t, "transform", "--write", "--config", cfgFile, "--color", "never", file)
	require.NoError(t, err)
	assert.Contains(t, output, "could not be parsed")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, broken, string(content))
}

func TestIntegration_UsageErrors(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "ssr: true\n")
	file := filepath.Join(dir, "Button.js")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown format", []string{"--format", "xml"}, cli.ExitInvalidUsage},
		{"diff with write", []string{"--write", "--format", "diff"}, cli.ExitInvalidUsage},
		{"diff with out-dir", []string{"--out-dir", filepath.Join(dir, "out"), "--format", "diff"}, cli.ExitInvalidUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"transform", "--config", cfgFile}, tt.args...)
			_, err := execute(t, append(args, file)...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCode(err), "err: %v", err)
		})
	}
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "filter: \"[unclosed\"\n")

	_, err := execute(t, "transform", "--config", cfgFile, filepath.Join(dir, "Button.js"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_MissingPath(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, nil, "ssr: true\n")

	_, err := execute(t, "transform", "--config", cfgFile, filepath.Join(dir, "Nope.js"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope.js")
}

func TestIntegration_Inspect(t *testing.T) {
	t.Parallel()

	dir, cfgFile := fixture(t, map[string]string{"Button.js": buttonSource}, "ssr: true\n")
	file := filepath.Join(dir, "Button.js")

	output, err := execute(t, "inspect", "--config", cfgFile, "--color", "never", "--output", file)
	require.NoError(t, err)

	assert.Contains(t, output, "(1 component)")
	assert.Contains(t, output, "dialect: tsx")
	assert.Contains(t, output, "bindings: styled")
	assert.Contains(t, output, "Button__Title")
	assert.Contains(t, output, "Output:")
	assert.Contains(t, output, ".withConfig(")

	dump, err := execute(t, "inspect", "--config", cfgFile, "--dump", file)
	require.NoError(t, err)
	assert.Contains(t, dump, "ComponentID:")
	assert.Contains(t, dump, "Button__Title")
}

func TestIntegration_InspectRequiresOneFile(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "inspect")
	require.Error(t, err)
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "custom.yml")

	_, err := execute(t, "init", "--output", target, "--namespace", "app")
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "namespace: \"app\"")
	assert.Contains(t, string(content), "ssr: true")

	// Non-interactive stdin declines the overwrite prompt.
	_, err = execute(t, "init", "--output", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "init", "--output", target, "--force")
	require.NoError(t, err)
	content, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# namespace: \"\"")
}

func TestIntegration_InitTOML(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "styledid.toml")

	_, err := execute(t, "init", "--format", "toml", "--output", target)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ssr = true")

	_, err = execute(t, "init", "--format", "ini", "--output", target)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}
