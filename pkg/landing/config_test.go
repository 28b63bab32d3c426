package landing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const witcherYAML = `title: The Witcher
background: witcher/background.jpg
favicon: witcher/logo.png
subColor: "#9c9c9c"
header:
  logo: witcher/logo.png
  menu:
    - title: Description
      link: "#"
    - title: Trailer
      link: "#"
main:
  genre: 2019, fantasy
  rating: 8
  slider:
    - img: witcher/series/series-1.jpg
      title: The End's Beginning
      subtitle: Episode 1
    - img: witcher/series/series-2.jpg
footer:
  copyright: "(c) 2020"
`

func TestParseConfigYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte(witcherYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Title != "The Witcher" {
		t.Errorf("title = %q", cfg.Title)
	}
	if cfg.SubColor == nil || *cfg.SubColor != "#9c9c9c" {
		t.Errorf("subColor = %v", cfg.SubColor)
	}
	if cfg.FontColor != nil {
		t.Error("absent fontColor should stay nil")
	}
	if cfg.Header == nil || len(cfg.Header.Menu) != 2 || cfg.Header.Social != nil {
		t.Errorf("header = %+v", cfg.Header)
	}
	if cfg.Main == nil || cfg.Main.Rating == nil || *cfg.Main.Rating != 8 {
		t.Errorf("main = %+v", cfg.Main)
	}
	if len(cfg.Main.Slider) != 2 || cfg.Main.Slider[1].Title != nil {
		t.Errorf("slider = %+v", cfg.Main.Slider)
	}
	if cfg.Footer == nil || cfg.Footer.Menu != nil {
		t.Errorf("footer = %+v", cfg.Footer)
	}
}

func TestParseConfigJSON(t *testing.T) {
	data := `{"title": "X", "main": {"rating": 7.5, "trailer": "https://youtu.be/x"}}`

	cfg, err := ParseConfig([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Header != nil || cfg.Footer != nil {
		t.Error("absent sections should stay nil")
	}
	if *cfg.Main.Rating != 7.5 || *cfg.Main.Trailer != "https://youtu.be/x" {
		t.Errorf("main = %+v", cfg.Main)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "", "empty"},
		{"unknown key", "title: X\nheadr:\n  logo: a.png\n", "headr"},
		{"bad rating", "main:\n  rating: [1, 2]\n", "parse page config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.yaml")
	if err := os.WriteFile(path, []byte(witcherYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Title != "The Witcher" {
		t.Errorf("title = %q", cfg.Title)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	cfg := fullConfig()
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("absent fields should be omitted:\n%s", data)
	}

	back, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if *back.Main.Rating != 8 || len(back.Main.Slider) != 3 || back.Main.Slider[2].Title != nil {
		t.Errorf("round trip lost data: %+v", back.Main)
	}
}

func TestFaviconType(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"favicon.svg", "image/svg+xml"},
		{"img/logo.PNG", "image/png"},
		{"icon.ico", "image/x-icon"},
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"https://cdn.example.com/icon.webp?v=3#x", "image/webp"},
		{"icon.tiff", "image/tiff"},
		{"favicon", ""},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			if got := FaviconType(tt.href); got != tt.want {
				t.Errorf("FaviconType(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}
