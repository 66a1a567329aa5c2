package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLSanitizer_Sanitize(t *testing.T) {
	s := NewHTMLSanitizer()

	tests := []struct {
		name        string
		in          string
		contains    []string
		notContains []string
		want        string
	}{
		{
			name: "plain text untouched",
			in:   "Merhaba dunya",
			want: "Merhaba dunya",
		},
		{
			name: "whitespace trimmed",
			in:   "  hello  ",
			want: "hello",
		},
		{
			name:        "script removed",
			in:          `<p>hi</p><script>alert(1)</script>`,
			contains:    []string{"<p>hi</p>"},
			notContains: []string{"script", "alert"},
		},
		{
			name:        "event handlers removed",
			in:          `<a href="https://go.dev" onclick="steal()">go</a>`,
			contains:    []string{`href="https://go.dev"`, "noreferrer"},
			notContains: []string{"onclick"},
		},
		{
			name: "text is escaped",
			in:   "Tom & Jerry < Spike",
			want: "Tom &amp; Jerry &lt; Spike",
		},
		{
			name: "only script becomes empty",
			in:   `<script>alert(1)</script>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.in)
			if tt.contains == nil && tt.notContains == nil {
				assert.Equal(t, tt.want, got)
			}
			for _, c := range tt.contains {
				assert.Contains(t, got, c)
			}
			for _, c := range tt.notContains {
				assert.NotContains(t, got, c)
			}
		})
	}
}
