package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kotrans/internal/hover"
	"codeberg.org/snonux/kotrans/internal/server"
	"codeberg.org/snonux/kotrans/internal/strategy"
	"codeberg.org/snonux/kotrans/internal/translation"
)

// Defaults for configuration keys.
const (
	DefaultOpenAIModel   = strategy.DefaultGPTModel
	DefaultGeminiModel   = strategy.DefaultGeminiModel
	DefaultDebounceDelay = 300

	configName = ".kotrans"
	envPrefix  = "KOTRANS"
)

// Settings is a snapshot of the configuration.
type Settings struct {
	Enabled       bool
	DebounceDelay time.Duration

	OpenAIKey   string
	OpenAIModel string
	OpenAIURL   string

	GeminiKey   string
	GeminiModel string
	GeminiURL   string

	MyMemoryURL string
	GoogleURL   string
	LibreURL    string

	DisabledStrategies []string
	Glossary           string

	ServerAddr string
	LogLevel   string
}

// SetDefaults registers default values for every configuration key.
func SetDefaults() {
	viper.SetDefault("enabled", true)
	viper.SetDefault("debounce_delay", DefaultDebounceDelay)
	viper.SetDefault("openai.model", DefaultOpenAIModel)
	viper.SetDefault("gemini.model", DefaultGeminiModel)
	viper.SetDefault("server.addr", server.DefaultAddr)
	viper.SetDefault("log.level", "info")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	SetDefaults()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".kotrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}

	// Environment variables
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini.api_key")
}

// LoadSettings reads the current configuration.
func LoadSettings() Settings {
	delay := viper.GetInt("debounce_delay")
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}

	return Settings{
		Enabled:            viper.GetBool("enabled"),
		DebounceDelay:      time.Duration(delay) * time.Millisecond,
		OpenAIKey:          GetOpenAIKey(),
		OpenAIModel:        viper.GetString("openai.model"),
		OpenAIURL:          viper.GetString("openai.base_url"),
		GeminiKey:          GetGeminiKey(),
		GeminiModel:        viper.GetString("gemini.model"),
		GeminiURL:          viper.GetString("gemini.base_url"),
		MyMemoryURL:        viper.GetString("mymemory.url"),
		GoogleURL:          viper.GetString("google.url"),
		LibreURL:           viper.GetString("libre.url"),
		DisabledStrategies: viper.GetStringSlice("strategies.disabled"),
		Glossary:           viper.GetString("dictionary.glossary"),
		ServerAddr:         viper.GetString("server.addr"),
		LogLevel:           viper.GetString("log.level"),
	}
}

// TranslationConfig converts the settings into a translator configuration.
func (s Settings) TranslationConfig() *translation.Config {
	config := translation.DefaultConfig()
	config.OpenAIKey = s.OpenAIKey
	config.OpenAIURL = s.OpenAIURL
	config.GeminiKey = s.GeminiKey
	config.GeminiURL = s.GeminiURL
	if s.OpenAIModel != "" {
		config.OpenAIModel = s.OpenAIModel
	}
	if s.GeminiModel != "" {
		config.GeminiModel = s.GeminiModel
	}
	config.MyMemoryURL = s.MyMemoryURL
	config.GoogleURL = s.GoogleURL
	config.LibreURL = s.LibreURL
	config.DisabledStrategies = s.DisabledStrategies
	config.GlossaryFile = s.Glossary
	return config
}

// HoverSettings returns the hover switch and debounce delay.
func (s Settings) HoverSettings() hover.Settings {
	return hover.Settings{Enabled: s.Enabled, DebounceDelay: s.DebounceDelay}
}

// WatchSettings calls fn with fresh settings whenever the config file
// changes. It does nothing when no config file is in use.
func WatchSettings(fn func(Settings)) {
	if viper.ConfigFileUsed() == "" {
		return
	}

	var mu sync.Mutex
	viper.OnConfigChange(func(e fsnotify.Event) {
		mu.Lock()
		defer mu.Unlock()
		fn(LoadSettings())
	})
	viper.WatchConfig()
}

// ToggleEnabled flips the enabled key and persists it. Without a config
// file in use, $HOME/.kotrans.yaml is created.
func ToggleEnabled() (bool, error) {
	enabled := !viper.GetBool("enabled")
	viper.Set("enabled", enabled)

	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return false, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, configName+".yaml")
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return enabled, nil
}
