// Package config holds the run configuration of the tnprep command: which
// families to generate, how large, with which leg-dimension policy and
// where to put the results. Values come from defaults, then an optional
// TOML file, then command-line flags.
package config

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/tensornet/builder"
)

// ErrInvalidConfig indicates an unreadable file or an out-of-range value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Run is one generation run.
//
// Example file:
//
//	families = ["peps", "ttn"]
//	size     = 64
//	leg_type = "open"
//	factor   = 2
//	seed     = 123
//	out_dir  = "data"
//	catalog  = "catalog.db"
//	parallel = 2
type Run struct {
	Families []string `toml:"families"`
	Size     int      `toml:"size"`
	LegType  string   `toml:"leg_type"`
	Factor   int64    `toml:"factor"`
	Seed     int64    `toml:"seed"`
	OutDir   string   `toml:"out_dir"`
	// Catalog is a badger directory; empty disables the catalog.
	Catalog string `toml:"catalog"`
	// Parallel caps concurrently generated families; 0 means no cap.
	Parallel int `toml:"parallel"`
}

// Default returns the built-in defaults. Families and Size have no default.
func Default() Run {
	return Run{
		LegType: builder.LegClosed.String(),
		Factor:  builder.DefaultFactor,
		Seed:    builder.DefaultSeed,
		OutDir:  "data",
	}
}

// Load reads path over the defaults. Unknown keys are rejected; relative
// out_dir and catalog paths are resolved against the file's directory.
func Load(path string) (Run, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Run{}, errors.Wrapf(ErrInvalidConfig, "decode %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Run{}, errors.Wrapf(ErrInvalidConfig, "%s: unknown keys %v", path, undecoded)
	}

	dir := filepath.Dir(path)
	cfg.OutDir = resolve(dir, cfg.OutDir)
	cfg.Catalog = resolve(dir, cfg.Catalog)

	return cfg, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks every field.
func (r Run) Validate() error {
	if _, err := r.FamilyList(); err != nil {
		return err
	}
	if r.Size < 2 {
		return errors.Wrapf(ErrInvalidConfig, "size %d < 2", r.Size)
	}
	if _, err := builder.ParseLegMode(r.LegType); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if err := builder.ValidateFactor(r.Factor); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if r.OutDir == "" {
		return errors.Wrap(ErrInvalidConfig, "out_dir is empty")
	}
	if r.Parallel < 0 {
		return errors.Wrapf(ErrInvalidConfig, "parallel %d < 0", r.Parallel)
	}
	return nil
}

// FamilyList parses Families, dropping repeats.
func (r Run) FamilyList() ([]builder.Family, error) {
	if len(r.Families) == 0 {
		return nil, errors.Wrap(ErrInvalidConfig, "no families")
	}
	seen := make(map[builder.Family]bool, len(r.Families))
	var out []builder.Family
	for _, name := range r.Families {
		f, err := builder.ParseFamily(name)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// GeneratorOptions returns the builder options for a validated Run.
func (r Run) GeneratorOptions() ([]builder.GeneratorOption, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	mode, _ := builder.ParseLegMode(r.LegType)

	return []builder.GeneratorOption{
		builder.WithSeed(r.Seed),
		builder.WithFactor(r.Factor),
		builder.WithLegMode(mode),
	}, nil
}
