package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config (E100-E109)
	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be read",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// Style (E110-E119)
	"E110": {
		Category: CategoryStyle,
		Message:  "Stylesheet could not be compiled",
	},
	"E111": {
		Category: CategoryStyle,
		Message:  "Class map could not be read",
	},
	"E112": {
		Category: CategoryStyle,
		Message:  "Class map could not be written",
	},
	"E113": {
		Category: CategoryStyle,
		Message:  "Class map is out of date",
		Detail:   "The compiled style module no longer matches the saved class map.",
	},

	// Export (E120-E129)
	"E120": {
		Category: CategoryExport,
		Message:  "Export failed",
	},
	"E121": {
		Category: CategoryExport,
		Message:  "Invalid export key",
		Detail:   "Keys must be relative, slash-separated paths without dot segments.",
	},
	"E122": {
		Category: CategoryExport,
		Message:  "No export target configured",
	},

	// Server (E130-E139)
	"E130": {
		Category: CategoryServer,
		Message:  "Server failed",
	},
	"E131": {
		Category: CategoryServer,
		Message:  "Render failed",
	},

	// CLI (E140-E149)
	"E140": {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
