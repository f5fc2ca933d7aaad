package batch

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []Entry
		wantErr     bool
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "identifiers",
			fileContent: `userName
get_user_data
MAX_RETRY_COUNT`,
			want: []Entry{
				{Text: "userName"},
				{Text: "get_user_data"},
				{Text: "MAX_RETRY_COUNT"},
			},
		},
		{
			name: "terms with translations",
			fileContent: `widget = 위젯
retry = 재시도`,
			want: []Entry{
				{Text: "widget", Translation: "위젯"},
				{Text: "retry", Translation: "재시도"},
			},
		},
		{
			name: "empty lines and whitespace",
			fileContent: `
userName

widget = 위젯  

  fileName  

`,
			want: []Entry{
				{Text: "userName"},
				{Text: "widget", Translation: "위젯"},
				{Text: "fileName"},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "userName\r\nwidget = 위젯\r\nfileName",
			want: []Entry{
				{Text: "userName"},
				{Text: "widget", Translation: "위젯"},
				{Text: "fileName"},
			},
		},
		{
			name:        "multiple equals signs",
			fileContent: `test = a = b`,
			want: []Entry{
				{Text: "test", Translation: "a = b"},
			},
		},
		{
			name: "empty side of equals is skipped",
			fileContent: `= 위젯
widget =
userName`,
			want: []Entry{
				{Text: "userName"},
			},
		},
		{
			name: "comments",
			fileContent: `// fetch the user
# user name = value
/* user data */
 * the config file`,
			want: []Entry{
				{Text: "// fetch the user", Comment: true},
				{Text: "# user name = value", Comment: true},
				{Text: "/* user data */", Comment: true},
				{Text: "* the config file", Comment: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp file
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "test.txt")
			err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644)
			if err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadBatchFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestRead_Error(t *testing.T) {
	_, err := Read(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Expected wrapped read error, got %v", err)
	}
}

func TestEntry_NeedsTranslation(t *testing.T) {
	if !(Entry{Text: "userName"}).NeedsTranslation() {
		t.Error("plain entry should need translation")
	}
	if (Entry{Text: "widget", Translation: "위젯"}).NeedsTranslation() {
		t.Error("entry with translation should not need translation")
	}
}
