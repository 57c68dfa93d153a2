package am

import (
	"strings"

	"github.com/teranos/swiftpoet/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Emit.Indent == "" {
		return errors.WithHint(
			errors.NewInvalidRequestError("emit.indent cannot be empty"),
			"use two spaces, four spaces or a tab",
		)
	}
	if strings.TrimSpace(c.Emit.Indent) != "" {
		return errors.NewInvalidRequestError("emit.indent must be whitespace only, got %q", c.Emit.Indent)
	}

	// Extension is a bare suffix: "swift", not ".swift" or "out/swift"
	if c.Emit.Extension == "" {
		return errors.NewInvalidRequestError("emit.extension cannot be empty")
	}
	if strings.ContainsAny(c.Emit.Extension, `./\`) {
		return errors.WithHintf(
			errors.NewInvalidRequestError("emit.extension must not contain a dot or path separator, got %q", c.Emit.Extension),
			"write %q", strings.Trim(c.Emit.Extension, `./\`),
		)
	}

	if c.Output.Dir == "" {
		return errors.NewInvalidRequestError("output.dir cannot be empty")
	}

	if c.Check.ContextLines < 0 {
		return errors.NewInvalidRequestError("check.context_lines must be >= 0, got %d", c.Check.ContextLines)
	}
	for _, p := range c.Check.IgnorePrefixes {
		if strings.TrimSpace(p) == "" {
			return errors.NewInvalidRequestError("check.ignore_prefixes entries cannot be blank")
		}
	}

	return nil
}
