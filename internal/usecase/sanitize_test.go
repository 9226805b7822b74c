package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "  Intro to Python  ", want: "Intro to Python"},
		{name: "ampersand kept", in: "Art & Design", want: "Art & Design"},
		{name: "comparison kept", in: "a < b", want: "a < b"},
		{name: "tags stripped", in: "<b>bold</b> move", want: "bold move"},
		{name: "script dropped", in: "<script>alert(1)</script>", want: ""},
		{name: "encoded script", in: "&lt;script&gt;alert(1)&lt;/script&gt;", want: ""},
		{name: "double encoded tag", in: "&amp;lt;b&amp;gt;x&amp;lt;/b&amp;gt;", want: "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := plainText(tc.in)
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, got, "<script")
		})
	}
}
