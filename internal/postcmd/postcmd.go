// Package postcmd renders the post-simulation command from a template and
// the top module name. It is a pure string operation, kept separate from
// the loader so the interpolation contract is independently testable.
package postcmd

import (
	"fmt"

	"github.com/vk/simgridgo/internal/config"
)

// expectedPlaceholders is the number of substitution points a post command
// template must have: one for the top unit name argument, one for the
// waveform file base name.
const expectedPlaceholders = 2

// Placeholders counts the `%s` placeholders in template. Any other
// formatting verb makes the template malformed; `%%` is the literal escape.
func Placeholders(template string) (int, error) {
	count := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		if i+1 >= len(template) {
			return 0, fmt.Errorf("%w: dangling %% at end of %q", config.ErrMalformedTemplate, template)
		}
		i++
		switch template[i] {
		case 's':
			count++
		case '%':
			// literal percent
		default:
			return 0, fmt.Errorf("%w: unsupported verb %%%c in %q", config.ErrMalformedTemplate, template[i], template)
		}
	}
	return count, nil
}

// Render substitutes top at the template's two placeholder positions and
// returns the composed command string. Templates with any other number of
// placeholders are rejected with config.ErrMalformedTemplate.
func Render(template, top string) (string, error) {
	n, err := Placeholders(template)
	if err != nil {
		return "", err
	}
	if n != expectedPlaceholders {
		return "", fmt.Errorf("%w: expected %d placeholders, found %d in %q",
			config.ErrMalformedTemplate, expectedPlaceholders, n, template)
	}
	return fmt.Sprintf(template, top, top), nil
}
