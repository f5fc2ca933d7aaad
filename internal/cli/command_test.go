package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// saveViper restores the global viper instance after the test.
func saveViper(t *testing.T) {
	t.Helper()
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	t.Cleanup(func() {
		*viper.GetViper() = *originalConfig
	})
	viper.Reset()
}

func noop(*cobra.Command, []string) error { return nil }

func TestCreateRootCommand(t *testing.T) {
	saveViper(t)
	flags := NewFlags()
	cmd := CreateRootCommand(flags, Actions{})

	// Test basic command properties
	if cmd.Use != "kotrans" {
		t.Errorf("Expected Use to be 'kotrans', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Korean") {
		t.Errorf("Expected Short description to mention Korean")
	}

	for _, name := range []string{"translate", "strategies", "serve", "toggle", "models"} {
		t.Run("command_"+name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			if err != nil || sub.Name() != name {
				t.Errorf("Expected subcommand %s to exist", name)
			}
		})
	}

	translateCmd, _, _ := cmd.Find([]string{"translate"})

	// Test that flags are set up
	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"log-level", true},
		{"glossary", true},
		{"disable", true},
		{"openai-model", true},
		{"gemini-model", true},
		{"strategy", false},
		{"comment", false},
		{"detailed", false},
		{"batch", false},
		{"output", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = translateCmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}

	serveCmd, _, _ := cmd.Find([]string{"serve"})
	if flag := serveCmd.Flags().Lookup("addr"); flag == nil || flag.DefValue != "127.0.0.1:7341" {
		t.Errorf("Expected serve --addr to default to 127.0.0.1:7341")
	}
}

func TestTranslateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"single text", []string{"translate", "userName"}, false},
		{"no text", []string{"translate"}, true},
		{"two texts", []string{"translate", "a", "b"}, true},
		{"batch without text", []string{"translate", "--batch", "words.txt"}, false},
		{"batch with text", []string{"translate", "--batch", "words.txt", "userName"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveViper(t)
			var called bool
			cmd := CreateRootCommand(NewFlags(), Actions{Translate: func(*cobra.Command, []string) error {
				called = true
				return nil
			}})
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if called == tt.wantErr {
				t.Errorf("translate action called = %v", called)
			}
		})
	}
}

func TestTranslateFlagsParsed(t *testing.T) {
	saveViper(t)
	flags := NewFlags()
	cmd := CreateRootCommand(flags, Actions{Translate: noop})
	cmd.SetArgs([]string{"translate", "-s", "GPT Translation", "--comment", "--detailed", "--disable", "google,libre", "// the user"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if flags.Strategy != "GPT Translation" || !flags.Comment || !flags.Detailed {
		t.Errorf("translate flags not parsed: %+v", flags)
	}
	if got := viper.GetStringSlice("strategies.disabled"); len(got) != 2 || got[0] != "google" || got[1] != "libre" {
		t.Errorf("Expected strategies.disabled to be [google libre], got %v", got)
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfgFile   string
		setupFunc func(t *testing.T) string
	}{
		{
			name:    "with config file",
			cfgFile: "test-config.yaml",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `openai:
  api_key: test-key
  model: gpt-4o
debounce_delay: 500`
				err := os.WriteFile(cfgPath, []byte(content), 0644)
				if err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name:    "without config file",
			cfgFile: "",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			saveViper(t)

			cfgPath := tt.setupFunc(t)
			if tt.cfgFile != "" && cfgPath != "" {
				tt.cfgFile = cfgPath
			}

			InitConfig(tt.cfgFile)

			// Test environment variable prefix
			t.Setenv("KOTRANS_TEST_VAR", "test-value")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			if !viper.GetBool("enabled") {
				t.Error("Expected enabled to default to true")
			}

			if cfgPath != "" {
				if got := viper.GetString("openai.model"); got != "gpt-4o" {
					t.Errorf("Expected openai.model from config, got %s", got)
				}
				if got := LoadSettings().DebounceDelay.Milliseconds(); got != 500 {
					t.Errorf("Expected debounce delay 500ms, got %d", got)
				}
			}
		})
	}
}

func TestGetOpenAIKey(t *testing.T) {
	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveViper(t)

			// Set up environment
			t.Setenv("OPENAI_API_KEY", tt.envKey)
			t.Setenv("GEMINI_API_KEY", tt.envKey)

			// Set up config
			if tt.configKey != "" {
				viper.Set("openai.api_key", tt.configKey)
				viper.Set("gemini.api_key", tt.configKey)
			}

			if got := GetOpenAIKey(); got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
			if got := GetGeminiKey(); got != tt.expected {
				t.Errorf("GetGeminiKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	saveViper(t)

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupPersistentFlags(cmd, flags)

	// Set some flag values
	cmd.PersistentFlags().Set("log-level", "debug")
	cmd.PersistentFlags().Set("glossary", "/test/glossary.yaml")
	cmd.PersistentFlags().Set("openai-model", "gpt-4o")

	bindFlagsToViper(cmd)

	// Test that values are bound
	if viper.GetString("log.level") != "debug" {
		t.Errorf("Expected log.level to be debug, got %s", viper.GetString("log.level"))
	}

	if viper.GetString("dictionary.glossary") != "/test/glossary.yaml" {
		t.Errorf("Expected dictionary.glossary to be /test/glossary.yaml, got %s", viper.GetString("dictionary.glossary"))
	}

	if viper.GetString("openai.model") != "gpt-4o" {
		t.Errorf("Expected openai.model to be gpt-4o, got %s", viper.GetString("openai.model"))
	}
}
