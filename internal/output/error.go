package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/menucli/internal/ax"
	"github.com/mj1618/menucli/internal/menu"
)

// ErrorOutput is the structured error envelope written to stderr.
type ErrorOutput struct {
	OK    bool        `json:"ok" yaml:"ok"`
	Error ErrorDetail `json:"error" yaml:"error"`
}

// ErrorDetail carries the machine-readable error code and message.
type ErrorDetail struct {
	Code       string   `json:"code" yaml:"code"`
	Message    string   `json:"message" yaml:"message"`
	Candidates []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

// Error codes emitted in the envelope.
const (
	CodePermissionDenied = "permission_denied"
	CodeAppNotFound      = "app_not_found"
	CodeItemNotFound     = "item_not_found"
	CodeAmbiguousMatch   = "ambiguous_match"
	CodeItemDisabled     = "item_disabled"
	CodeNotToggleable    = "not_toggleable"
	CodeAXError          = "ax_error"
)

// FromError classifies err into the error envelope. Anything outside the
// app and menu taxonomies is reported under the accessibility umbrella
// code.
func FromError(err error) ErrorOutput {
	detail := ErrorDetail{Code: CodeAXError, Message: err.Error()}

	var ambiguous *menu.AmbiguousError
	var notFound *menu.NotFoundError
	var disabled *menu.DisabledError
	var notToggleable *menu.NotToggleableError
	var appNotFound *ax.AppNotFoundError

	switch {
	case errors.Is(err, ax.ErrNotTrusted):
		detail.Code = CodePermissionDenied
	case errors.As(err, &appNotFound):
		detail.Code = CodeAppNotFound
	case errors.As(err, &notFound):
		detail.Code = CodeItemNotFound
	case errors.As(err, &ambiguous):
		detail.Code = CodeAmbiguousMatch
		detail.Candidates = ambiguous.Candidates
	case errors.As(err, &disabled):
		detail.Code = CodeItemDisabled
	case errors.As(err, &notToggleable):
		detail.Code = CodeNotToggleable
	}
	return ErrorOutput{OK: false, Error: detail}
}

// ExitCode maps err onto the process exit code: 3 for permission problems,
// 4 for resolution misses, 1 for everything else.
func ExitCode(err error) int {
	var ambiguous *menu.AmbiguousError
	var notFound *menu.NotFoundError
	var appNotFound *ax.AppNotFoundError

	switch {
	case errors.Is(err, ax.ErrNotTrusted):
		return 3
	case errors.As(err, &appNotFound), errors.As(err, &notFound), errors.As(err, &ambiguous):
		return 4
	}
	return 1
}

// WriteError writes the error envelope to stderr: structured in the JSON
// and YAML formats, a readable message otherwise.
func WriteError(err error) {
	envelope := FromError(err)
	switch OutputFormat {
	case FormatJSON, FormatCompact, FormatNDJSON:
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		_ = enc.Encode(envelope)
	case FormatYAML:
		enc := yaml.NewEncoder(os.Stderr)
		_ = enc.Encode(envelope)
		_ = enc.Close()
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", envelope.Error.Message)
		if len(envelope.Error.Candidates) > 0 {
			fmt.Fprintln(os.Stderr, "  Candidates:")
			for _, c := range envelope.Error.Candidates {
				fmt.Fprintf(os.Stderr, "    %s\n", c)
			}
		}
	}
}
