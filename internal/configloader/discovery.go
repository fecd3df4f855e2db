package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the config directories and files.
const AppName = "styledid"

// DefaultProjectFile is the file written by "styledid init".
const DefaultProjectFile = ".styledid.yml"

// ConfigPaths holds the config file found at each level. Empty means none.
type ConfigPaths struct {
	System   string // /etc/styledid/config.yaml or %ProgramData%\styledid
	User     string // $XDG_CONFIG_HOME/styledid/config.yaml
	Project  string // nearest .styledid.{yml,yaml,toml}
	Explicit string // --config
}

var (
	//nolint:gochecknoglobals // Read-only lookup table, in order of preference.
	projectFileNames = []string{
		".styledid.yml", ".styledid.yaml", ".styledid.toml",
		"styledid.yml", "styledid.yaml", "styledid.toml",
	}
	//nolint:gochecknoglobals // Read-only lookup table.
	dirFileNames = []string{"config.yaml", "config.yml", "config.toml"}
	//nolint:gochecknoglobals // Read-only lookup table.
	repoMarkers = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths looks up the system, user and project config files for
// workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), dirFileNames),
		User:    firstFile(UserConfigDir(), dirFileNames),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", AppName)
	}
	root := os.Getenv("ProgramData")
	if root == "" {
		root = `C:\ProgramData`
	}
	return filepath.Join(root, AppName)
}

// UserConfigDir returns $XDG_CONFIG_HOME/styledid, falling back to
// ~/.config/styledid, or "" when neither can be determined.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// FindProjectConfig walks up from startDir and returns the first project
// config file, or "" when the walk reaches a repository root, the home
// directory or the filesystem root without finding one.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if path := firstFile(dir, projectFileNames); path != "" {
			return path, nil
		}
		if isRepoRoot(dir) || dir == home {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		if path := filepath.Join(dir, name); fileExists(path) {
			return path
		}
	}
	return ""
}

func isRepoRoot(dir string) bool {
	for _, marker := range repoMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
