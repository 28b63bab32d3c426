package landing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PageConfig describes one landing page. Optional fields are pointers: a nil
// pointer means the key was absent and its section is not rendered. A
// present but empty string is rendered as given.
type PageConfig struct {
	Title           string        `yaml:"title" json:"title"`
	Background      *string       `yaml:"background,omitempty" json:"background,omitempty"`
	Favicon         *string       `yaml:"favicon,omitempty" json:"favicon,omitempty"`
	FontColor       *string       `yaml:"fontColor,omitempty" json:"fontColor,omitempty"`
	BackgroundColor *string       `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	SubColor        *string       `yaml:"subColor,omitempty" json:"subColor,omitempty"`
	Header          *HeaderConfig `yaml:"header,omitempty" json:"header,omitempty"`
	Main            *MainConfig   `yaml:"main,omitempty" json:"main,omitempty"`
	Footer          *FooterConfig `yaml:"footer,omitempty" json:"footer,omitempty"`
}

// HeaderConfig is the top bar: logo, navigation and social icons.
type HeaderConfig struct {
	Logo   *string      `yaml:"logo,omitempty" json:"logo,omitempty"`
	Menu   []MenuItem   `yaml:"menu,omitempty" json:"menu,omitempty"`
	Social []SocialLink `yaml:"social,omitempty" json:"social,omitempty"`
}

// MainConfig is the hero block.
type MainConfig struct {
	Genre       *string  `yaml:"genre,omitempty" json:"genre,omitempty"`
	Rating      *float64 `yaml:"rating,omitempty" json:"rating,omitempty"`
	Description *string  `yaml:"description,omitempty" json:"description,omitempty"`
	Trailer     *string  `yaml:"trailer,omitempty" json:"trailer,omitempty"`
	Slider      []Slide  `yaml:"slider,omitempty" json:"slider,omitempty"`
}

// FooterConfig is the bottom bar.
type FooterConfig struct {
	Copyright *string    `yaml:"copyright,omitempty" json:"copyright,omitempty"`
	Menu      []MenuItem `yaml:"menu,omitempty" json:"menu,omitempty"`
}

// MenuItem is a navigation link.
type MenuItem struct {
	Title string `yaml:"title" json:"title"`
	Link  string `yaml:"link" json:"link"`
}

// SocialLink is an icon link in the header.
type SocialLink struct {
	Title string `yaml:"title" json:"title"`
	Link  string `yaml:"link" json:"link"`
	Image string `yaml:"image" json:"image"`
}

// Slide is one carousel card.
type Slide struct {
	Img      string  `yaml:"img" json:"img"`
	Title    *string `yaml:"title,omitempty" json:"title,omitempty"`
	Subtitle *string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
}

// String returns a pointer to s, for building configs in code.
func String(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// LoadConfig reads a page config from a YAML or JSON file.
func LoadConfig(path string) (*PageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a page config. Unknown keys are rejected so that a
// misspelled section name does not silently drop the section.
func ParseConfig(data []byte) (*PageConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg PageConfig
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("page config is empty")
		}
		return nil, fmt.Errorf("parse page config: %w", err)
	}
	return &cfg, nil
}

// Marshal encodes the config as YAML.
func (c *PageConfig) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
