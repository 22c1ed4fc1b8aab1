// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package renamer

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults for Config fields.
const (
	DefaultStart  = 0
	DefaultDigits = 2
)

// ErrInvalidConfig is returned, wrapped, when a Config cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes a single renaming run.
type Config struct {
	Dir      string // directory whose files are renamed
	BaseName string // prefix of every new name
	Start    int    // number given to the first file
	Digits   int    // minimum width of the zero-padded number
	DryRun   bool   // only report the plan
}

// Validate reports whether c describes a usable run.
func (c Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("%w: directory is required", ErrInvalidConfig)
	}
	return c.validateNaming()
}

func (c Config) validateNaming() error {
	switch {
	case c.Start < 0:
		return fmt.Errorf("%w: start must not be negative, got %d", ErrInvalidConfig, c.Start)
	case c.Digits < 1:
		return fmt.Errorf("%w: digits must be positive, got %d", ErrInvalidConfig, c.Digits)
	case strings.ContainsAny(c.BaseName, `/`+string(separator)):
		return fmt.Errorf("%w: base name %q must not contain a path separator", ErrInvalidConfig, c.BaseName)
	}
	return nil
}
