package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"devruntime/internal/core/model"
	"devruntime/internal/platform"
	"devruntime/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlStyle struct {
	BackgroundColor string `yaml:"background_color,omitempty"`
	Color           string `yaml:"color,omitempty"`
}

type yamlSettings struct {
	Target       string    `yaml:"target"`
	StaticLabel  string    `yaml:"static_label,omitempty"`
	IsStaticTime bool      `yaml:"is_static_time"`
	IsFlowTime   bool      `yaml:"is_flow_time"`
	AlertSound   bool      `yaml:"alert_sound"`
	PolygonForm  string    `yaml:"polygon_form"`
	Style        yamlStyle `yaml:"style,omitempty"`
	APIURL       string    `yaml:"api_url"`
	Token        string    `yaml:"token,omitempty"`
}

// SettingsPath returns the default location of the settings file.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsFileName), nil
}

// LoadSettings reads user preferences from the default location.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettingsFrom(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the default location.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// SaveSettingsTo writes user preferences to YAML.
func SaveSettingsTo(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Target:       settings.Target,
		StaticLabel:  settings.StaticLabel,
		IsStaticTime: settings.StaticTime,
		IsFlowTime:   settings.FlowTime,
		AlertSound:   settings.AlertSound,
		PolygonForm:  string(settings.PolygonForm),
		Style: yamlStyle{
			BackgroundColor: settings.BackgroundColor,
			Color:           settings.Color,
		},
		APIURL: settings.APIURL,
		Token:  settings.Token,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	// the file may hold an API token
	if err := os.WriteFile(configPath, serialized, 0o600); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	// missing and malformed targets are kept as typed; TimerConfig treats both as zero
	settings.Target = strings.TrimSpace(fileData.Target)
	settings.StaticLabel = fileData.StaticLabel
	settings.StaticTime = fileData.IsStaticTime
	settings.FlowTime = fileData.IsFlowTime
	settings.AlertSound = fileData.AlertSound

	if model.PolygonForm(fileData.PolygonForm) == model.PolygonCircle {
		settings.PolygonForm = model.PolygonCircle
	} else {
		settings.PolygonForm = model.PolygonSquare
	}

	settings.BackgroundColor = fileData.Style.BackgroundColor
	settings.Color = fileData.Style.Color

	if fileData.APIURL != "" {
		settings.APIURL = strings.TrimRight(fileData.APIURL, "/")
	}
	settings.Token = fileData.Token
}
