package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/wsmith/huedo/internal/errors"
)

func getConfigBaseDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, ConfigDirName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", ConfigDirName)
}

func getConfigPath() string {
	return filepath.Join(getConfigBaseDir(), ConfigFilename)
}

// HubConfig identifies the bridge and the API username obtained by pairing
type HubConfig struct {
	IP   string `mapstructure:"ip"`
	User string `mapstructure:"user"`
}

// LightGroup is a client-side named set of light ids. The bridge knows
// nothing about these; they exist only in the config file.
type LightGroup struct {
	Lights []int `mapstructure:"lights"`
}

// LoggingConfig represents the logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config represents the application configuration
type Config struct {
	Hub         HubConfig             `mapstructure:"hub"`
	LightGroups map[string]LightGroup `mapstructure:"lightgroups"`
	Logging     LoggingConfig         `mapstructure:"logging"`

	// Internal viper instance and resolved file path
	v    *viper.Viper
	path string
}

// Load loads configuration from a file and environment variables. A
// missing config file is not an error: an unconfigured Config with
// empty hub credentials is returned instead.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("hub.ip", "")
	v.SetDefault("hub.user", "")
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.format", LogFormatText)

	path := configFile
	if path == "" {
		path = getConfigPath()
	}
	v.SetConfigFile(path)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		v:    v,
		path: path,
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// Path returns the file path the config was loaded from and will be saved to.
func (c *Config) Path() string {
	return c.path
}

// Save writes the whole in-memory configuration back to its file.
func (c *Config) Save() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	c.v.Set("hub.ip", c.Hub.IP)
	c.v.Set("hub.user", c.Hub.User)
	c.v.Set("logging.level", c.Logging.Level)
	c.v.Set("logging.format", c.Logging.Format)

	groups := make(map[string]any, len(c.LightGroups))
	for name, group := range c.LightGroups {
		groups[name] = map[string]any{"lights": group.Lights}
	}
	c.v.Set("lightgroups", groups)

	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// Group returns the named light group. A name that is absent or that
// resolves to an empty light list is an ErrGroupNotFound failure.
func (c *Config) Group(name string) (LightGroup, error) {
	group, ok := c.LightGroups[name]
	if !ok || len(group.Lights) == 0 {
		return LightGroup{}, errors.GroupNotFoundf("unconfigured light group %q", name)
	}
	return group, nil
}

// GroupNames returns the configured group names in sorted order.
func (c *Config) GroupNames() []string {
	names := make([]string, 0, len(c.LightGroups))
	for name := range c.LightGroups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UpdateCredentials replaces the hub address and API username and
// persists the config immediately.
func (c *Config) UpdateCredentials(ip, user string) error {
	c.Hub.IP = ip
	c.Hub.User = user
	return c.Save()
}

// SetGroup creates or replaces a light group and persists the config.
func (c *Config) SetGroup(name string, lights []int) error {
	if name == "" {
		return errors.InvalidInputf("group name must not be empty")
	}
	if len(lights) == 0 {
		return errors.InvalidInputf("group %q must contain at least one light", name)
	}
	if c.LightGroups == nil {
		c.LightGroups = make(map[string]LightGroup)
	}
	c.LightGroups[name] = LightGroup{Lights: lights}
	return c.Save()
}

// RemoveGroup deletes a light group and persists the config.
func (c *Config) RemoveGroup(name string) error {
	if _, ok := c.LightGroups[name]; !ok {
		return errors.GroupNotFoundf("unconfigured light group %q", name)
	}
	delete(c.LightGroups, name)
	return c.Save()
}
