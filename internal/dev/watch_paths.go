package dev

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/marquee-dev/marquee/internal/config"
)

// CollectWatchPaths returns a normalized list of watch paths for the
// project: dev.watch plus the page config, static directory and host
// template when they live outside it.
func CollectWatchPaths(cfg *config.Config) []string {
	paths := cfg.WatchPaths()
	paths = append(paths,
		cfg.PagePath(),
		cfg.StaticPath(),
		cfg.TemplatePath(),
		cfg.Path(),
	)

	unique := make([]string, 0, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		clean := filepath.Clean(path)
		covered := false
		for _, existing := range unique {
			if isWithinDir(clean, existing) {
				covered = true
				break
			}
		}
		if !covered {
			unique = append(unique, clean)
		}
	}

	return unique
}

// OutputIgnore returns the ignore pattern for the build output, relative
// to the project, so rebuilds do not retrigger the watcher.
func OutputIgnore(cfg *config.Config) string {
	rel, err := filepath.Rel(cfg.Dir(), cfg.OutputPath())
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.ToSlash(rel)
}

func isWithinDir(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath = filepath.Clean(absPath)
	absDir = filepath.Clean(absDir)
	if absPath == absDir {
		return true
	}
	if !strings.HasSuffix(absDir, string(os.PathSeparator)) {
		absDir += string(os.PathSeparator)
	}
	return strings.HasPrefix(absPath, absDir)
}
