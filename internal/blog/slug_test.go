package blog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"PunctuationAndDoubleSpaces", "Hello, World!  Foo", "hello-world-foo"},
		{"LeadingAndTrailingHyphens", "---A---", "a"},
		{"AlreadyClean", "simple-title", "simple-title"},
		{"UpperCase", "My First Post", "my-first-post"},
		{"Digits", "Top 10 Posts of 2024", "top-10-posts-of-2024"},
		{"UnicodeStripped", "Café über alles", "caf-ber-alles"},
		{"TabsAndNewlines", "a\tb\nc", "a-b-c"},
		{"HyphensInsideWhitespace", "a - b", "a-b"},
		{"OnlyPunctuation", "!!!", ""},
		{"Empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		require.Equal(t, "hello-world-foo", Slugify("Hello, World!  Foo"))
	}
}
