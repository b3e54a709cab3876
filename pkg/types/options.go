// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Permission names a single output-document permission flag.
type Permission string

const (
	AllowPrinting         Permission = "allow_printing"
	AllowCopying          Permission = "allow_copying"
	AllowModification     Permission = "allow_modification"
	AllowAnnotation       Permission = "allow_annotation"
	AllowFormFilling      Permission = "allow_form_filling"
	AllowExtraction       Permission = "allow_extraction"
	AllowAssembly         Permission = "allow_assembly"
	AllowDegradedPrinting Permission = "allow_degraded_printing"
)

// validPermissions is the closed set of recognized permission keys.
var validPermissions = map[Permission]struct{}{
	AllowPrinting:         {},
	AllowCopying:          {},
	AllowModification:     {},
	AllowAnnotation:       {},
	AllowFormFilling:      {},
	AllowExtraction:       {},
	AllowAssembly:         {},
	AllowDegradedPrinting: {},
}

// ConversionOptions describes one requested conversion. Values are
// constructed through NewConversionOptions and the With* derivations, which
// validate every invariant; treat instances as immutable and pass them by
// value.
type ConversionOptions struct {
	// Kind is the requested output format.
	Kind ConversionKind

	// OutputPath is the target file (single-file kinds) or directory
	// (image kind). Its parent directory must exist at construction.
	OutputPath string

	// Permissions restricts operations on the output document. Keys must
	// belong to the fixed permission set.
	Permissions map[Permission]bool

	// Password, when set, is the password for encrypted sources.
	Password string

	// ImageQuality names a built-in quality preset (low, medium, high,
	// ultra). Empty means the medium baseline.
	ImageQuality string

	// Custom overrides individual resolved image settings. Custom fields
	// win over the preset.
	Custom *CustomImageSettings
}

// NewConversionOptions builds a validated ConversionOptions for the given
// kind and output path. Permissions, password, and image quality are added
// through the With* derivations.
func NewConversionOptions(kind ConversionKind, outputPath string) (ConversionOptions, error) {
	o := ConversionOptions{Kind: kind, OutputPath: outputPath}
	if err := o.Validate(); err != nil {
		return ConversionOptions{}, err
	}
	return o, nil
}

// Validate checks every construction invariant. It never touches the
// filesystem beyond an existence check on the output parent directory.
func (o ConversionOptions) Validate() error {
	if !o.Kind.Valid() {
		return fmt.Errorf("%w: unknown conversion kind %q", ErrInvalidOptions, o.Kind)
	}
	if o.OutputPath == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidOptions)
	}
	parent := filepath.Dir(o.OutputPath)
	if _, err := os.Stat(parent); err != nil {
		return fmt.Errorf("%w: output directory does not exist: %s", ErrInvalidOptions, parent)
	}
	for key := range o.Permissions {
		if _, ok := validPermissions[key]; !ok {
			return fmt.Errorf("%w: unknown permission %q", ErrInvalidOptions, key)
		}
	}
	if o.ImageQuality != "" {
		if _, ok := PresetByName(o.ImageQuality); !ok {
			return fmt.Errorf("%w: unknown image quality %q (valid: %s)",
				ErrInvalidOptions, o.ImageQuality, strings.Join(PresetNames(), ", "))
		}
	}
	if o.Custom != nil {
		if err := o.Custom.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// WithOutputPath returns a copy targeting a different output path.
func (o ConversionOptions) WithOutputPath(outputPath string) (ConversionOptions, error) {
	out := o.copy()
	out.OutputPath = outputPath
	if err := out.Validate(); err != nil {
		return ConversionOptions{}, err
	}
	return out, nil
}

// WithPassword returns a copy carrying a source password.
func (o ConversionOptions) WithPassword(password string) (ConversionOptions, error) {
	out := o.copy()
	out.Password = password
	if err := out.Validate(); err != nil {
		return ConversionOptions{}, err
	}
	return out, nil
}

// WithImageQuality returns a copy requesting the named quality preset.
func (o ConversionOptions) WithImageQuality(quality string) (ConversionOptions, error) {
	out := o.copy()
	out.ImageQuality = quality
	if err := out.Validate(); err != nil {
		return ConversionOptions{}, err
	}
	return out, nil
}

// WithPermissions returns a copy carrying the given permission flags.
func (o ConversionOptions) WithPermissions(perms map[Permission]bool) (ConversionOptions, error) {
	out := o.copy()
	out.Permissions = clonePermissions(perms)
	if err := out.Validate(); err != nil {
		return ConversionOptions{}, err
	}
	return out, nil
}

// WithCustomImage returns a copy carrying validated custom image settings.
func (o ConversionOptions) WithCustomImage(custom CustomImageSettings) (ConversionOptions, error) {
	out := o.copy()
	out.Custom = custom.clone()
	if err := out.Validate(); err != nil {
		return ConversionOptions{}, err
	}
	return out, nil
}

// FileExtension returns the canonical extension for the requested kind.
func (o ConversionOptions) FileExtension() string {
	return o.Kind.Ext()
}

// RequiresPassword reports whether a source password was supplied.
func (o ConversionOptions) RequiresPassword() bool {
	return o.Password != ""
}

// HasPermissions reports whether any permission flags are set.
func (o ConversionOptions) HasPermissions() bool {
	return len(o.Permissions) > 0
}

// OutputFilename resolves the output file name. When OutputPath already
// carries an extension it is used verbatim; otherwise the canonical
// extension for the kind is appended to base.
func (o ConversionOptions) OutputFilename(base string) string {
	if filepath.Ext(o.OutputPath) != "" {
		return filepath.Base(o.OutputPath)
	}
	return base + o.FileExtension()
}

// PermissionNames returns the granted permission keys in sorted order.
func (o ConversionOptions) PermissionNames() []string {
	names := make([]string, 0, len(o.Permissions))
	for key, allowed := range o.Permissions {
		if allowed {
			names = append(names, string(key))
		}
	}
	sort.Strings(names)
	return names
}

func (o ConversionOptions) String() string {
	return fmt.Sprintf("ConversionOptions(kind=%s, output=%s)", o.Kind, o.OutputPath)
}

// copy duplicates o, cloning the map and pointer fields so derivations
// never alias the original.
func (o ConversionOptions) copy() ConversionOptions {
	out := o
	out.Permissions = clonePermissions(o.Permissions)
	out.Custom = o.Custom.clone()
	return out
}

func clonePermissions(perms map[Permission]bool) map[Permission]bool {
	if perms == nil {
		return nil
	}
	out := make(map[Permission]bool, len(perms))
	for k, v := range perms {
		out[k] = v
	}
	return out
}
