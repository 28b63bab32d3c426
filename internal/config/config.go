package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/marquee-dev/marquee/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "marquee.json"

	// DefaultPage is the default page config file.
	DefaultPage = "movie.yaml"

	// DefaultSelector is the default mount point selector.
	DefaultSelector = ".app"

	// DefaultStatic is the default static asset directory.
	DefaultStatic = "static"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config represents the complete marquee.json configuration.
type Config struct {
	// Page is the path to the page config (YAML or JSON).
	Page string `json:"page,omitempty"`

	// Mount controls where the page is attached.
	Mount MountConfig `json:"mount,omitempty"`

	// Static contains static asset configuration.
	Static StaticConfig `json:"static,omitempty"`

	// Assets lists icon locations and extra page resources.
	Assets AssetsConfig `json:"assets,omitempty"`

	// Content controls how text fields are rendered.
	Content ContentConfig `json:"content,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Build contains build output configuration.
	Build BuildConfig `json:"build,omitempty"`

	// Publish contains S3 upload configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// MountConfig selects the host document and mount point.
type MountConfig struct {
	// Selector is a CSS selector matching exactly one element.
	Selector string `json:"selector,omitempty"`

	// Template is an optional host HTML file. The built-in template is
	// used when empty.
	Template string `json:"template,omitempty"`
}

// StaticConfig contains static asset configuration.
type StaticConfig struct {
	// Dir is copied verbatim into the output directory.
	Dir string `json:"dir,omitempty"`
}

// AssetsConfig lists icon URLs and extra resources, relative to the page.
type AssetsConfig struct {
	Star        string   `json:"star,omitempty"`
	StarOutline string   `json:"starOutline,omitempty"`
	Play        string   `json:"play,omitempty"`
	StyleSheets []string `json:"stylesheets,omitempty"`
	Scripts     []string `json:"scripts,omitempty"`
}

// ContentConfig controls description rendering.
type ContentConfig struct {
	// Markdown renders the hero description as Markdown.
	Markdown bool `json:"markdown,omitempty"`

	// Unsafe keeps raw HTML in Markdown output.
	Unsafe bool `json:"unsafe,omitempty"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// HotReload reloads connected browsers after each rebuild.
	HotReload bool `json:"hotReload,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to ignore during watch.
	Ignore []string `json:"ignore,omitempty"`

	// Metrics exposes Prometheus metrics at /metrics.
	Metrics bool `json:"metrics,omitempty"`
}

// BuildConfig contains build output settings.
type BuildConfig struct {
	// Output is the output directory for builds.
	Output string `json:"output,omitempty"`

	// Pretty indents the generated HTML.
	Pretty bool `json:"pretty,omitempty"`
}

// PublishConfig names the S3 destination.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Page: DefaultPage,
		Mount: MountConfig{
			Selector: DefaultSelector,
		},
		Static: StaticConfig{
			Dir: DefaultStatic,
		},
		Assets: AssetsConfig{
			StyleSheets: []string{"css/style.css"},
		},
		Dev: DevConfig{
			Port:      DefaultPort,
			Host:      DefaultHost,
			HotReload: true,
			Watch:     []string{"."},
			Metrics:   true,
		},
		Build: BuildConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for marquee.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No marquee.json found in " + filepath.Dir(path))
		}
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithLocationFromError(path, data, err).
			WithSuggestion("Check that marquee.json is valid JSON").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeBuildWrite).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Page == "" {
		c.Page = DefaultPage
	}
	if c.Mount.Selector == "" {
		c.Mount.Selector = DefaultSelector
	}
	if c.Static.Dir == "" {
		c.Static.Dir = DefaultStatic
	}

	// Dev
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Watch == nil {
		c.Dev.Watch = []string{"."}
	}

	// Build
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}

	c.Publish.Prefix = strings.Trim(c.Publish.Prefix, "/")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New(errors.CodeConfigValue).
			WithDetail("dev.port must be between 0 and 65535, got " + strconv.Itoa(c.Dev.Port))
	}
	if strings.TrimSpace(c.Mount.Selector) == "" {
		return errors.New(errors.CodeConfigValue).
			WithDetail("mount.selector must not be empty")
	}
	out := filepath.Clean(c.Build.Output)
	if out == "." || out == ".." || strings.HasPrefix(out, ".."+string(filepath.Separator)) {
		return errors.New(errors.CodeConfigValue).
			WithDetail("build.output must be a subdirectory of the project, got " + c.Build.Output)
	}
	return nil
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// resolve makes path absolute relative to the config directory.
func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// OutputPath returns the path to the build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Build.Output)
}

// PagePath returns the path to the page config.
func (c *Config) PagePath() string {
	return c.resolve(c.Page)
}

// StaticPath returns the path to the static asset directory.
func (c *Config) StaticPath() string {
	return c.resolve(c.Static.Dir)
}

// TemplatePath returns the path to the host template, or "" for the
// built-in template.
func (c *Config) TemplatePath() string {
	return c.resolve(c.Mount.Template)
}

// WatchPaths returns the watched paths resolved against the project.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Dev.Watch))
	for _, p := range c.Dev.Watch {
		paths = append(paths, c.resolve(p))
	}
	return paths
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing marquee.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No marquee.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
