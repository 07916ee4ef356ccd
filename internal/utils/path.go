package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppName names the config directory and default files.
const AppName = "dictree"

// PathResolver locates word lists and config files relative to the binary,
// the working directory and the user's config directory.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     UserConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// UserConfigDir returns the platform config directory for dictree.
func UserConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppName)
		}
		return filepath.Join(homeDir, ".config", AppName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppName)
	default:
		return filepath.Join(homeDir, ".config", AppName)
	}
}

// ConfigDir returns the resolved config directory.
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// WordListCandidates lists where a word list named by userPath may live, in
// order of preference.
func (pr *PathResolver) WordListCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	return append(candidates,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	)
}

// GetWordListPath resolves userPath to the first existing regular file among
// the candidates. When none exists it returns the first candidate along with
// os.ErrNotExist.
func (pr *PathResolver) GetWordListPath(userPath string) (string, error) {
	candidates := pr.WordListCandidates(userPath)
	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && stat.Mode().IsRegular() {
			log.Debugf("Found word list: %s", path)
			return path, nil
		}
		log.Debugf("Word list candidate not found: %s", path)
	}
	return candidates[0], os.ErrNotExist
}
