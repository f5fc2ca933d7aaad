package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		ok   bool
	}{
		{"line comment", "// This is a comment", "This is a comment", true},
		{"indented line comment", "    //   fetch the user", "fetch the user", true},
		{"block comment", "/* Multi line user */", "Multi line user", true},
		{"doc comment", "/** JSDoc user */", "JSDoc user", true},
		{"continuation", "* user in block comment", "user in block comment", true},
		{"closing only", "user here */", "user here", true},
		{"hash comment", "# load the config", "load the config", true},
		{"punctuation", "// Don't retry (yet)!", "Don't retry (yet)!", true},
		{"korean", "// 한글 주석", "", false},
		{"digits", "// retry 3 times", "", false},
		{"empty", "//", "", false},
		{"blank", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "retry 3 times", Strip("// retry 3 times"))
	assert.Equal(t, "", Strip("/* */"))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		col   int
		want  Span
		found bool
	}{
		{
			name:  "cursor inside line comment",
			line:  "x := 1 // set the user",
			col:   12,
			want:  Span{Text: "// set the user", Start: 7, End: 22},
			found: true,
		},
		{
			name:  "cursor before line comment",
			line:  "x := 1 // set the user",
			col:   2,
			found: false,
		},
		{
			name:  "hash comment",
			line:  "x = 1  # the user",
			col:   10,
			want:  Span{Text: "# the user", Start: 7, End: 17},
			found: true,
		},
		{
			name:  "closed block comment",
			line:  "a /* user */ b",
			col:   5,
			want:  Span{Text: "/* user */", Start: 2, End: 12},
			found: true,
		},
		{
			name:  "past closed block comment",
			line:  "a /* user */ b",
			col:   13,
			found: false,
		},
		{
			name:  "open block comment",
			line:  "/* user data",
			col:   4,
			want:  Span{Text: "/* user data", Start: 0, End: 12},
			found: true,
		},
		{
			name:  "no comment",
			line:  "userName := getUser()",
			col:   3,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.line, tt.col)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
