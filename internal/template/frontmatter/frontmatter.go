// Package frontmatter parses the YAML header of template files into a
// FileSpec and returns the remaining body.
package frontmatter

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/adrg/frontmatter"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
)

// Parse extracts the frontmatter block and body from template content.
// Content without a frontmatter block yields a zero FileSpec and the
// content unchanged.
func Parse(content []byte) (*model.FileSpec, []byte, error) {
	var spec model.FileSpec

	body, err := frontmatter.Parse(bytes.NewReader(content), &spec)
	if err != nil {
		return nil, nil, newParseError("invalid frontmatter", err)
	}

	if err := validateSpec(&spec); err != nil {
		return nil, nil, err
	}

	debug.Debug("[frontmatter] Parsed spec: to=%q inject=%v anchors=%d bodyBytes=%d",
		spec.To, spec.Inject, spec.AnchorCount(), len(body))
	return &spec, body, nil
}

// ParseChmod converts an octal permission string ("755", "0644") to a
// file mode. An empty string returns (0, false, nil).
func ParseChmod(chmod string) (os.FileMode, bool, error) {
	if chmod == "" {
		return 0, false, nil
	}

	parsed, err := strconv.ParseUint(chmod, 8, 32)
	if err != nil {
		return 0, false, newParseError(
			fmt.Sprintf("chmod %q is not a valid octal mode", chmod), err)
	}
	if parsed > 0o777 {
		return 0, false, newParseError(
			fmt.Sprintf("chmod %q exceeds 0777", chmod), nil)
	}

	return os.FileMode(parsed), true, nil
}

// validateSpec enforces frontmatter consistency rules.
func validateSpec(spec *model.FileSpec) error {
	if spec.Inject {
		switch spec.AnchorCount() {
		case 0:
			return newParseError("inject requires one of before/after/prepend/append/lineAt", nil)
		case 1:
			// ok
		default:
			return newParseError("inject accepts only one of before/after/prepend/append/lineAt", nil)
		}
		if spec.To == "" {
			return newParseError("inject requires a target path in 'to'", nil)
		}
	} else if spec.HasAnchor() {
		return newParseError("before/after/prepend/append/lineAt require inject: true", nil)
	}

	if spec.LineAt < 0 {
		return newParseError("lineAt must be a positive line number", nil)
	}

	if _, _, err := ParseChmod(spec.Chmod); err != nil {
		return err
	}

	return nil
}
