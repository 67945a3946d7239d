package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const launchComment = "Mood-themed to-do list with a pomodoro timer"

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	AppDataDir(appName string) (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// AppDataDir returns the per-application directory holding the settings and
// session files, creating it when needed.
func (service *platformService) AppDataDir(appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, dirName(appName))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create app data dir: %w", err)
	}
	return dir, nil
}

// SyncAutostart registers or removes the login item so it matches enabled.
func SyncAutostart(service Service, appName string, enabled bool) error {
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return service.EnableAutostart(appName, execPath)
}

func dirName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		return "moodtodo"
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// launchEntry describes the login item written by EnableAutostart.
type launchEntry struct {
	Name    string
	Slug    string
	Exec    string
	Comment string
}

func newLaunchEntry(appName, execPath string) (launchEntry, error) {
	name := strings.TrimSpace(appName)
	if name == "" {
		return launchEntry{}, errors.New("app name is empty")
	}
	if execPath == "" {
		return launchEntry{}, errors.New("exec path is empty")
	}
	return launchEntry{Name: name, Slug: dirName(name), Exec: execPath, Comment: launchComment}, nil
}

// writeFileAtomic replaces path through a temp file in the same directory.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
