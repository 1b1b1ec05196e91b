package locator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequenceToken() TokenSource {
	n := 0

	return func() string {
		n++
		return fmt.Sprint(n)
	}
}

func newTestBuilder() Builder {
	return NewBuilder(BuilderConfig{
		BaseURL: "https://cataas.com/",
		Token:   sequenceToken(),
	})
}

func TestBuilder_Variants(t *testing.T) {
	tests := []struct {
		name string
		run  func(b Builder) string
		want string
	}{
		{
			name: "random image",
			run:  func(b Builder) string { return b.Random(false) },
			want: "https://cataas.com/cat?random=1",
		},
		{
			name: "random gif",
			run:  func(b Builder) string { return b.Random(true) },
			want: "https://cataas.com/cat/gif?random=1",
		},
		{
			name: "text image",
			run:  func(b Builder) string { return b.WithText("hello world", false) },
			want: "https://cataas.com/cat/says/hello%20world?random=1",
		},
		{
			name: "text gif",
			run:  func(b Builder) string { return b.WithText("a/b?c", true) },
			want: "https://cataas.com/cat/gif/says/a%2Fb%3Fc?random=1",
		},
		{
			name: "text with sub-delimiters",
			run:  func(b Builder) string { return b.WithText("a&b=c+d: $5 @you", false) },
			want: "https://cataas.com/cat/says/a%26b%3Dc%2Bd%3A%20%245%20%40you?random=1",
		},
		{
			name: "text keeps unreserved marks",
			run:  func(b Builder) string { return b.WithText("hi! (it's ~*fine*_-.)", false) },
			want: "https://cataas.com/cat/says/hi!%20(it's%20~*fine*_-.)?random=1",
		},
		{
			name: "text utf-8",
			run:  func(b Builder) string { return b.WithText("café", false) },
			want: "https://cataas.com/cat/says/caf%C3%A9?random=1",
		},
		{
			name: "tag image",
			run:  func(b Builder) string { return b.WithTag("cute", false) },
			want: "https://cataas.com/cat/cute?random=1",
		},
		{
			name: "tag gif",
			run:  func(b Builder) string { return b.WithTag("cute", true) },
			want: "https://cataas.com/cat/cute/gif?random=1",
		},
		{
			name: "tag and text gif",
			run:  func(b Builder) string { return b.WithTagAndText("orange", "hi there", true) },
			want: "https://cataas.com/cat/orange/gif/says/hi%20there?random=1",
		},
		{
			name: "database id",
			run:  func(b Builder) string { return b.ByDatabaseID("595f280c557291a9750ebf80") },
			want: "https://cataas.com/cat/595f280c557291a9750ebf80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.run(newTestBuilder()))
		})
	}
}

func TestBuilder_RefreshChangesOnlyToken(t *testing.T) {
	b := newTestBuilder()
	req := Request{Tag: "cute", Text: "meow", Animated: true}

	first := b.Build(req)
	second := b.Refresh(req)

	assert.Equal(t, "https://cataas.com/cat/cute/gif/says/meow?random=1", first)
	assert.Equal(t, "https://cataas.com/cat/cute/gif/says/meow?random=2", second)
}

func TestBuilder_RefreshByDatabaseIDIgnoresOtherFields(t *testing.T) {
	b := newTestBuilder()

	got := b.Refresh(Request{DatabaseID: "abc", Tag: "cute", Text: "meow", Animated: true})
	assert.Equal(t, "https://cataas.com/cat/abc?random=1", got)
}

func TestNewBuilder_Defaults(t *testing.T) {
	b := NewBuilder(BuilderConfig{})

	got := b.Random(false)
	assert.Contains(t, got, DefaultBaseURL+"/cat?random=")
}

func TestNewClockToken_StrictlyIncreasing(t *testing.T) {
	token := NewClockToken()
	seen := map[string]bool{}

	for range 1000 {
		v := token()
		require.False(t, seen[v], "token %s repeated", v)
		seen[v] = true
	}
}
