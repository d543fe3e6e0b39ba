package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// confFileName is the name of the launch count / style config file.
const confFileName = "launcher.conf"

// Config holds the paths the launcher works with.
type Config struct {
	HomeDir  string
	AppDirs  []string // Descriptor directories, scanned in order
	ConfPath string   // Style overrides and launch counts
}

// Default returns the standard paths following XDG conventions.
func Default() *Config {
	home, _ := os.UserHomeDir()

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(home, ".config")
	}
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(home, ".local", "share")
	}

	return &Config{
		HomeDir: home,
		AppDirs: []string{
			"/usr/share/applications",
			"/usr/local/share/applications",
			filepath.Join(dataDir, "applications"),
		},
		ConfPath: filepath.Join(configDir, confFileName),
	}
}

// SettingsPath returns the default optional settings file path.
func SettingsPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "launchbox", "settings.yaml")
}

// Settings is the optional YAML settings file.
type Settings struct {
	ExtraAppDirs []string `yaml:"extra_app_dirs"`
}

// LoadSettings reads the settings file. A missing file yields empty settings.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Apply appends the extra descriptor directories after the standard ones,
// so entries there shadow the system dirs on id collisions.
func (c *Config) Apply(s *Settings) {
	for _, dir := range s.ExtraAppDirs {
		if dir != "" {
			c.AppDirs = append(c.AppDirs, dir)
		}
	}
}
