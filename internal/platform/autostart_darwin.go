//go:build darwin

package platform

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

const launchAgentPrefix = "com.pomobar."

var launchAgentTemplate = template.Must(template.New("plist").Funcs(template.FuncMap{
	"xml": func(value string) (string, error) {
		var escaped bytes.Buffer
		if err := xml.EscapeText(&escaped, []byte(value)); err != nil {
			return "", err
		}
		return escaped.String(), nil
	},
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{xml .Label}}</string>
	<key>ProgramArguments</key>
	<array>
		<string>{{xml .ExecPath}}</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>LimitLoadToSessionType</key>
	<string>Aqua</string>
	<key>ProcessType</key>
	<string>Interactive</string>
</dict>
</plist>
`))

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

// autostartPath is the per-user LaunchAgent plist.
func (service *platformService) autostartPath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentPrefix+appSlug(appName)+".plist"), nil
}

func autostartEntry(appName, execPath string) ([]byte, error) {
	var plist bytes.Buffer
	err := launchAgentTemplate.Execute(&plist, struct {
		Label    string
		ExecPath string
	}{
		Label:    launchAgentPrefix + appSlug(appName),
		ExecPath: execPath,
	})
	if err != nil {
		return nil, fmt.Errorf("render launch agent: %w", err)
	}
	return plist.Bytes(), nil
}
