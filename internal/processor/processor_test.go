package processor

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/kotrans/internal/cli"
	"codeberg.org/snonux/kotrans/internal/registry"
	"codeberg.org/snonux/kotrans/internal/testutil"
	"codeberg.org/snonux/kotrans/internal/translation"
)

func newTestProcessor(t *testing.T, flags *cli.Flags) (*Processor, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	config := translation.DefaultConfig()
	config.DisabledStrategies = []string{registry.MyMemoryID, registry.GoogleID, registry.LibreID}
	translator, err := translation.NewTranslator(config, nil)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	p := NewProcessor(flags, translator)
	p.SetIO(strings.NewReader(""), &stdout, &stderr)
	return p, &stdout, &stderr
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	translator, err := translation.NewTranslator(nil, nil)
	require.NoError(t, err)

	p := NewProcessor(flags, translator)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}

	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}

	if p.translator != translator {
		t.Error("Translator not set correctly")
	}
}

func TestProcessSingle(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*cli.Flags)
		input      string
		wantOut    string
		wantStderr string
	}{
		{"identifier", func(*cli.Flags) {}, "userName", "사용자 이름\n", ""},
		{"untranslatable echoes input", func(*cli.Flags) {}, "qwertyuiop", "qwertyuiop\n", "Warning:"},
		{"comment", func(f *cli.Flags) { f.Comment = true }, "// the user", "the 사용자\n", ""},
		{"strategy", func(f *cli.Flags) { f.Strategy = "local dictionary" }, "user", "사용자\n", ""},
		{"unknown strategy", func(f *cli.Flags) { f.Strategy = "Nope" }, "user", "user\n", `Strategy "Nope" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := cli.NewFlags()
			tt.setup(flags)
			p, stdout, stderr := newTestProcessor(t, flags)

			require.NoError(t, p.ProcessSingle(context.Background(), tt.input))
			assert.Equal(t, tt.wantOut, stdout.String())
			if tt.wantStderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestProcessSingle_Detailed(t *testing.T) {
	flags := cli.NewFlags()
	flags.Detailed = true
	p, stdout, _ := newTestProcessor(t, flags)

	require.NoError(t, p.ProcessSingle(context.Background(), "user"))
	assert.JSONEq(t, `{
		"originalText": "user",
		"translatedText": "사용자",
		"strategy": "Local Dictionary",
		"success": true
	}`, stdout.String())
}

func TestProcessBatch_InvalidFile(t *testing.T) {
	flags := cli.NewFlags()
	flags.BatchFile = "/nonexistent/file.txt"
	p, _, _ := newTestProcessor(t, flags)

	err := p.ProcessBatch(context.Background())
	if err == nil {
		t.Error("Expected error for non-existent batch file")
	}
}

func TestProcessBatch_ValidFile(t *testing.T) {
	flags := cli.NewFlags()
	flags.BatchFile = testutil.CreateBatchFile(t,
		"widget = 위젯",
		"widget",
		"userName",
		"// the user",
		"qwertyuiop",
	)
	flags.OutputDir = filepath.Join(t.TempDir(), "out")
	p, stdout, stderr := newTestProcessor(t, flags)

	require.NoError(t, p.ProcessBatch(context.Background()))

	assert.Equal(t, "widget = 위젯\n"+
		"userName = 사용자 이름\n"+
		"// the user = the 사용자\n"+
		"qwertyuiop = qwertyuiop\n", stdout.String())
	assert.Contains(t, stderr.String(), "Terms added: 1")
	assert.Contains(t, stderr.String(), "Translated: 3")
	assert.Contains(t, stderr.String(), "Unchanged: 1")

	saved := filepath.Join(flags.OutputDir, "translations.txt")
	testutil.AssertFileContains(t, saved, "// the user = the 사용자\nuserName = 사용자 이름\nwidget = 위젯\n")
}

func TestProcessBatch_Stdin(t *testing.T) {
	flags := cli.NewFlags()
	flags.BatchFile = "-"
	p, stdout, _ := newTestProcessor(t, flags)
	p.stdin = strings.NewReader("user\nfileName\n")

	require.NoError(t, p.ProcessBatch(context.Background()))
	assert.Equal(t, "user = 사용자\nfileName = 파일 이름\n", stdout.String())
}

func TestProcessBatch_Cancelled(t *testing.T) {
	flags := cli.NewFlags()
	flags.BatchFile = testutil.CreateBatchFile(t, "user")
	p, _, _ := newTestProcessor(t, flags)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.ProcessBatch(ctx), context.Canceled)
}

func TestListStrategies(t *testing.T) {
	p, stdout, _ := newTestProcessor(t, cli.NewFlags())

	require.NoError(t, p.ListStrategies(""))
	assert.Equal(t, "Registered strategies (by priority):\n"+
		"  1. Local Dictionary\n"+
		"  2. GPT Translation\n"+
		"  3. Gemini Translation\n", stdout.String())

	stdout.Reset()
	require.NoError(t, p.ListStrategies("userName"))
	assert.Equal(t, "Strategies able to translate \"userName\":\n  1. Local Dictionary\n", stdout.String())
}
