//go:build linux

package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var desktopEntryTemplate = template.Must(template.New("desktop").
	Funcs(template.FuncMap{"exec": quoteExec}).
	Parse(`[Desktop Entry]
Type=Application
Name={{.Name}}
Comment={{.Comment}}
Exec={{exec .Exec}}
Icon={{.Slug}}
Categories=Utility;Office;
Terminal=false
X-GNOME-Autostart-enabled=true
`))

func (service *platformService) EnableAutostart(appName, execPath string) error {
	entry, err := newLaunchEntry(appName, execPath)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	path, err := service.desktopEntryPath(entry.Slug)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	content, err := buildDesktopEntry(entry)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := writeFileAtomic(path, content, 0o644); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if strings.TrimSpace(appName) == "" {
		return errors.New("disable autostart: app name is empty")
	}
	path, err := service.desktopEntryPath(dirName(appName))
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("disable autostart: remove desktop entry: %w", err)
	}
	return nil
}

func (service *platformService) desktopEntryPath(slug string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", slug+".desktop"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func buildDesktopEntry(entry launchEntry) ([]byte, error) {
	var content bytes.Buffer
	if err := desktopEntryTemplate.Execute(&content, entry); err != nil {
		return nil, fmt.Errorf("render desktop entry: %w", err)
	}
	return content.Bytes(), nil
}

// quoteExec quotes an Exec path following the desktop entry rules for
// reserved characters.
func quoteExec(path string) string {
	if !strings.ContainsAny(path, " \t\"'\\`$;&|<>()*?#~") {
		return path
	}
	escaper := strings.NewReplacer(`"`, `\"`, "`", "\\`", `$`, `\$`, `\`, `\\`)
	return `"` + escaper.Replace(path) + `"`
}
