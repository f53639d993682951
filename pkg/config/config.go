package config

import (
	"github.com/arthur-debert/amlpack/pkg/errors"
	"github.com/arthur-debert/amlpack/pkg/export"
)

// Config is the complete amlpack configuration
type Config struct {
	Export   Export   `koanf:"export"`
	Classify Classify `koanf:"classify"`
}

// Export controls the layout of an export tree
type Export struct {
	ScriptsFolder  string `koanf:"scripts_folder"`
	Extension      string `koanf:"extension"`
	Manifest       string `koanf:"manifest"`
	ManifestFormat string `koanf:"manifest_format"`
}

// Classify controls the batch classifier
type Classify struct {
	Workers          int  `koanf:"workers"`
	DependencyChecks bool `koanf:"dependency_checks"`
}

// Validate rejects settings no export could honour
func (c *Config) Validate() error {
	if c.Export.ScriptsFolder == "" {
		return errors.New(errors.ErrConfigValid, "export.scripts_folder cannot be empty")
	}
	if c.Export.Extension == "" {
		return errors.New(errors.ErrConfigValid, "export.extension cannot be empty")
	}
	if c.Classify.Workers < 0 {
		return errors.Newf(errors.ErrConfigValid, "classify.workers must not be negative, got %d", c.Classify.Workers)
	}

	if _, err := c.ManifestFormat(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid export.manifest_format")
	}
	return nil
}

// ManifestFormat resolves the manifest encoding: the explicit format when
// set, else the one implied by the manifest name. It is empty when no
// manifest is written.
func (c *Config) ManifestFormat() (export.Format, error) {
	if c.Export.ManifestFormat != "" {
		return export.ParseFormat(c.Export.ManifestFormat)
	}
	if c.Export.Manifest == "" {
		return "", nil
	}
	return export.FormatForPath(c.Export.Manifest)
}
