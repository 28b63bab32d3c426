package markdown

import (
	"strings"
	"testing"

	"github.com/marquee-dev/marquee/pkg/landing"
)

var _ landing.DescriptionFormatter = (*Formatter)(nil)

func TestFormatHTML(t *testing.T) {
	f := New(Options{})

	tests := []struct {
		name    string
		source  string
		want    []string
		notWant []string
	}{
		{
			name:   "emphasis",
			source: "Geralt of **Rivia**",
			want:   []string{"<p>Geralt of <strong>Rivia</strong></p>"},
		},
		{
			name:   "bare URL is linked",
			source: "Streaming on https://www.netflix.com now",
			want:   []string{`href="https://www.netflix.com"`},
		},
		{
			name:    "script removed",
			source:  "hello <script>alert(1)</script>",
			want:    []string{"hello"},
			notWant: []string{"<script", "alert(1)</script>"},
		},
		{
			name:    "event handler removed",
			source:  `<a href="#" onclick="steal()">x</a>`,
			notWant: []string{"onclick"},
		},
		{
			name:   "external link opens in new tab",
			source: "[trailer](https://www.youtube.com/watch?v=P0oJqfLzZzQ)",
			want:   []string{`target="_blank"`, `href="https://www.youtube.com/watch?v=P0oJqfLzZzQ"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.FormatHTML(tt.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output %q should contain %q", got, want)
				}
			}
			for _, bad := range tt.notWant {
				if strings.Contains(got, bad) {
					t.Errorf("output %q should not contain %q", got, bad)
				}
			}
		})
	}
}

func TestFormatHTMLUnsafe(t *testing.T) {
	f := New(Options{Unsafe: true})

	got, err := f.FormatHTML(`<span class="accent">Toss a coin</span>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `<span class="accent">`) {
		t.Errorf("unsafe output should keep raw HTML, got %q", got)
	}
}
