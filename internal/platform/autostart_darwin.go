//go:build darwin

package platform

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var launchAgentTemplate = template.Must(template.New("plist").
	Funcs(template.FuncMap{"xml": escapeXML}).
	Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{xml .Label}}</string>
	<key>ProgramArguments</key>
	<array>
		<string>{{xml .Exec}}</string>
	</array>
	<key>LimitLoadToSessionType</key>
	<string>Aqua</string>
	<key>ProcessType</key>
	<string>Interactive</string>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`))

type launchAgent struct {
	Label string
	Exec  string
}

func (service *platformService) EnableAutostart(appName, execPath string) error {
	entry, err := newLaunchEntry(appName, execPath)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	agent := launchAgent{Label: launchAgentLabel(entry.Slug), Exec: entry.Exec}
	path, err := launchAgentPath(agent.Label)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}

	var content bytes.Buffer
	if err := launchAgentTemplate.Execute(&content, agent); err != nil {
		return fmt.Errorf("enable autostart: render plist: %w", err)
	}
	if err := writeFileAtomic(path, content.Bytes(), 0o644); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if strings.TrimSpace(appName) == "" {
		return errors.New("disable autostart: app name is empty")
	}
	path, err := launchAgentPath(launchAgentLabel(dirName(appName)))
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("disable autostart: remove plist: %w", err)
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

func launchAgentPath(label string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", label+".plist"), nil
}

func launchAgentLabel(slug string) string {
	return "com.moodtodo." + slug
}

func escapeXML(value string) string {
	var escaped strings.Builder
	_ = xml.EscapeText(&escaped, []byte(value))
	return escaped.String()
}
