package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DataDirEnv overrides the directory the default ledger lives in.
const DataDirEnv = "FUELTRACKER_DATA_DIR"

const appDir = "fueltracker"

// ResolveDataDir picks the ledger directory: DataDirEnv if set, otherwise
// the platform's per-user data location (XDG_DATA_HOME or ~/.local/share
// on Unix, Application Support on macOS, APPDATA on Windows).
func ResolveDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}
	base, err := userDataDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir (set %s): %w", DataDirEnv, err)
	}
	return filepath.Join(base, appDir), nil
}

func userDataDir() (string, error) {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return "", errors.New("APPDATA is not set")
	}
	if runtime.GOOS != "darwin" {
		if dir := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(dir) {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support"), nil
	}
	return filepath.Join(home, ".local", "share"), nil
}
