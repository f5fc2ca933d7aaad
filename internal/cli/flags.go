package cli

import "codeberg.org/snonux/kotrans/internal/server"

// Flags holds all command-line flag values
type Flags struct {
	// Global flags
	CfgFile  string
	LogLevel string
	Glossary string
	Disabled []string

	// Translate flags
	Strategy  string
	Comment   bool
	Detailed  bool
	BatchFile string
	OutputDir string

	// Serve flags
	Addr      string
	LogFormat string

	// LLM flags
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:    "info",
		Addr:        server.DefaultAddr,
		LogFormat:   "json",
		OpenAIModel: DefaultOpenAIModel,
		GeminiModel: DefaultGeminiModel,
	}
}
