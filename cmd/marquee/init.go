package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/marquee-dev/marquee/internal/errors"
	"github.com/marquee-dev/marquee/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		template    string
		title       string
		description string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a new landing page project",
		Long: `Create a new landing page project in dir (default: the current
directory).

Templates:
  minimal   A single hero section and the default icons (default)
  full      Header, hero, carousel and footer in a custom host page

Examples:
  marquee init witcher
  marquee init witcher --title="The Witcher" --template=full`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(dir, template, templates.Config{
				Title:       title,
				Description: description,
			}, force)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "minimal", "Project template (minimal, full)")
	cmd.Flags().StringVar(&title, "title", "", "Movie title (default from the directory name)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Hero description")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Write into a directory that is not empty")

	return cmd
}

func runInit(dir, templateName string, cfg templates.Config, force bool) error {
	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	projectDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	if !force {
		entries, err := os.ReadDir(projectDir)
		if err == nil && len(entries) > 0 {
			return errors.New(errors.CodeDirNotEmpty).WithDetail(projectDir)
		}
	}

	if cfg.Title == "" {
		cfg.Title = titleFromDir(projectDir)
	}

	printBanner()
	info("Creating %s from the '%s' template...", cfg.Title, tmpl.Name)
	fmt.Println()

	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return errors.New(errors.CodeBuildWrite).WithDetail(projectDir).Wrap(err)
	}
	if err := tmpl.Create(projectDir, cfg); err != nil {
		return err
	}

	for _, p := range tmpl.Paths() {
		info("  %s", p)
	}
	fmt.Println()
	success("Project created")
	fmt.Println()
	fmt.Println("  Next steps:")
	if dir != "." {
		fmt.Printf("    cd %s\n", dir)
	}
	fmt.Println("    marquee dev")
	fmt.Println()

	return nil
}

// titleFromDir turns a directory name such as "the-witcher" into
// "The Witcher".
func titleFromDir(dir string) string {
	words := strings.FieldsFunc(filepath.Base(dir), func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	if len(words) == 0 {
		return "Untitled"
	}
	return strings.Join(words, " ")
}
