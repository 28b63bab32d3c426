package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// Error codes used across the CLI.
const (
	CodeConfigNotFound     = "E100"
	CodeConfigInvalid      = "E101"
	CodeConfigValue        = "E102"
	CodePageNotFound       = "E103"
	CodePageInvalid        = "E104"
	CodeDirNotEmpty        = "E150"
	CodePortInUse          = "E151"
	CodeMountNotFound      = "E200"
	CodeMountAmbiguous     = "E201"
	CodeMountSelector      = "E202"
	CodeTemplateInvalid    = "E203"
	CodeBuildWrite         = "E300"
	CodeBuildStatic        = "E301"
	CodeBuildRender        = "E302"
	CodeBuildUnsafeOutput  = "E303"
	CodePublishNoBucket    = "E400"
	CodePublishCredentials = "E401"
	CodePublishUpload      = "E402"
	CodePublishNoOutput    = "E403"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E149)
	// ============================================

	CodeConfigNotFound: {
		Category:   CategoryConfig,
		Message:    "Project config not found",
		Detail:     "marquee looks for marquee.json in the current directory or the path given with --config.",
		Suggestion: "Run 'marquee init' to create a project.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid project config",
		Detail:   "marquee.json could not be parsed as JSON.",
	},
	CodeConfigValue: {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A value in marquee.json is out of range or inconsistent.",
	},
	CodePageNotFound: {
		Category:   CategoryConfig,
		Message:    "Page config not found",
		Detail:     "The page config file named by \"page\" in marquee.json does not exist.",
		Suggestion: "Check the \"page\" path; it is resolved relative to marquee.json.",
	},
	CodePageInvalid: {
		Category:   CategoryConfig,
		Message:    "Invalid page config",
		Detail:     "The page config must be a YAML or JSON mapping with known keys (title, header, main, footer, ...).",
		Suggestion: "Keys are case sensitive: fontColor, backgroundColor, subColor.",
	},

	// ============================================
	// CLI Errors (E150-E199)
	// ============================================

	CodeDirNotEmpty: {
		Category:   CategoryCLI,
		Message:    "Directory not empty",
		Detail:     "marquee init refuses to write into a directory that already has files.",
		Suggestion: "Choose a new directory or pass --force.",
	},
	CodePortInUse: {
		Category:   CategoryCLI,
		Message:    "Port already in use",
		Detail:     "The dev server could not listen on the configured port.",
		Suggestion: "Stop the other process or pass --port.",
	},

	// ============================================
	// Mount Errors (E200-E299)
	// ============================================

	CodeMountNotFound: {
		Category:   CategoryMount,
		Message:    "Mount point not found",
		Detail:     "No element in the host template matches the mount selector.",
		Suggestion: "Add an element such as <div class=\"app\"></div> or change mount.selector.",
	},
	CodeMountAmbiguous: {
		Category:   CategoryMount,
		Message:    "Mount selector matches more than one element",
		Detail:     "The page is mounted into exactly one element.",
		Suggestion: "Use an id selector such as #app.",
	},
	CodeMountSelector: {
		Category: CategoryMount,
		Message:  "Invalid mount selector",
		Detail:   "mount.selector is not a valid CSS selector.",
	},
	CodeTemplateInvalid: {
		Category: CategoryMount,
		Message:  "Host template could not be read",
		Detail:   "mount.template must name a readable HTML file.",
	},

	// ============================================
	// Build Errors (E300-E399)
	// ============================================

	CodeBuildWrite: {
		Category: CategoryBuild,
		Message:  "Failed to write build output",
	},
	CodeBuildStatic: {
		Category: CategoryBuild,
		Message:  "Failed to copy static files",
		Detail:   "Files under static.dir are copied into the output directory as is.",
	},
	CodeBuildRender: {
		Category: CategoryBuild,
		Message:  "Failed to render page",
	},
	CodeBuildUnsafeOutput: {
		Category:   CategoryBuild,
		Message:    "Refusing to clean output directory",
		Detail:     "The output directory resolves to the project root or one of its parents.",
		Suggestion: "Set build.output to a subdirectory such as dist.",
	},

	// ============================================
	// Publish Errors (E400-E499)
	// ============================================

	CodePublishNoBucket: {
		Category:   CategoryPublish,
		Message:    "No bucket configured",
		Suggestion: "Set publish.bucket in marquee.json or pass --bucket.",
	},
	CodePublishCredentials: {
		Category:   CategoryPublish,
		Message:    "Could not load AWS configuration",
		Detail:     "Credentials and region are read from the standard AWS environment variables and shared config files.",
		Suggestion: "Set AWS_PROFILE or AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY and AWS_REGION.",
	},
	CodePublishUpload: {
		Category: CategoryPublish,
		Message:  "Upload failed",
	},
	CodePublishNoOutput: {
		Category:   CategoryPublish,
		Message:    "Nothing to publish",
		Detail:     "The output directory does not exist or is empty.",
		Suggestion: "Run 'marquee build' first.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
