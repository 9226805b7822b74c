package forum

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	cases := map[string][]string{
		"":                         {},
		"react":                    {"react"},
		" react , javascript ,, ": {"react", "javascript"},
		"go,go, rust":              {"go", "go", "rust"},
		",,,":                      {},
	}
	for in, want := range cases {
		got := ParseTags(in)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("ParseTags(%q): expected %v, got %v", in, want, got)
		}
	}
}
