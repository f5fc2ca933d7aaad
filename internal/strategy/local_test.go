package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/kotrans/internal/lexicon"
)

func TestLocal_Translate(t *testing.T) {
	local := NewLocal(nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match", "user", "사용자"},
		{"case insensitive", "USER", "사용자"},
		{"spaced phrase", "user name", "사용자 이름"},
		{"camel case", "userName", "사용자 이름"},
		{"partial", "This is a user", "This is a 사용자"},
		{"no match", "qwerty", "qwerty"},
		{"no word matches", "This is a comment", "This is a comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := local.Translate(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocal_Metadata(t *testing.T) {
	local := NewLocal(nil)

	assert.Equal(t, LocalName, local.Name())
	assert.Equal(t, 0, local.Priority())
	assert.True(t, local.CanHandle(""))
	assert.True(t, local.CanHandle("anything at all"))
}

func TestLocal_Mutation(t *testing.T) {
	lex := lexicon.New(map[string]string{"user": "사용자"}, nil, nil)
	local := NewLocal(lex)
	ctx := context.Background()

	assert.Equal(t, 1, local.Size())
	assert.False(t, local.HasTranslation("widget"))

	local.AddTranslation("Widget", "위젯")
	assert.True(t, local.HasTranslation("widget"))
	assert.Equal(t, 2, local.Size())

	got, err := local.Translate(ctx, "widget")
	require.NoError(t, err)
	assert.Equal(t, "위젯", got)

	assert.True(t, local.RemoveTranslation("WIDGET"))
	assert.False(t, local.RemoveTranslation("widget"))
	assert.Equal(t, 1, local.Size())

	// The lexicon the strategy was seeded from is left untouched.
	_, ok := lex.Lookup("widget")
	assert.False(t, ok)
}
