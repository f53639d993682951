package export

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/amlpack/pkg/diff"
	"github.com/arthur-debert/amlpack/pkg/errors"
	"github.com/arthur-debert/amlpack/pkg/filesystem"
	"github.com/arthur-debert/amlpack/pkg/logging"
	"github.com/arthur-debert/amlpack/pkg/types"
	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ManifestVersion is written to every manifest
const ManifestVersion = 1

// Format is a manifest encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTOML, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown manifest format %q", s).
		WithDetail("format", s)
}

// FormatForPath infers the format from a file extension
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf(errors.ErrInvalidInput, "cannot infer manifest format of %q", path).
			WithDetail("path", path)
	}
	return ParseFormat(ext)
}

// Entry records one exported item
type Entry struct {
	Path         string   `toml:"path,omitempty" yaml:"path,omitempty" json:"path,omitempty"`
	Kind         string   `toml:"kind" yaml:"kind" json:"kind"`
	UniqueKey    string   `toml:"unique_key" yaml:"unique_key" json:"unique_key"`
	DisplayName  string   `toml:"display_name,omitempty" yaml:"display_name,omitempty" json:"display_name,omitempty"`
	Name         string   `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Variant      string   `toml:"variant" yaml:"variant" json:"variant"`
	InstalledID  string   `toml:"installed_id,omitempty" yaml:"installed_id,omitempty" json:"installed_id,omitempty"`
	CompareKey   string   `toml:"compare_key" yaml:"compare_key" json:"compare_key"`
	Dependencies []string `toml:"dependencies,omitempty" yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// NewEntry describes item. Path is left empty.
func NewEntry(item *types.InstallItem) Entry {
	e := Entry{
		Kind:        item.Reference.Kind,
		UniqueKey:   item.Reference.UniqueKey,
		DisplayName: item.Reference.DisplayName,
		Name:        item.Name(),
		Variant:     item.Variant().String(),
		InstalledID: item.InstalledID,
		CompareKey:  item.CompareKey(),
	}
	for _, dep := range item.Dependencies {
		e.Dependencies = append(e.Dependencies, dep.Key())
	}
	return e
}

// Reference returns the identity the entry was recorded under
func (e Entry) Reference() types.Reference {
	return types.Reference{Kind: e.Kind, UniqueKey: e.UniqueKey, DisplayName: e.DisplayName}
}

// Manifest lists the entries of one export in batch order
type Manifest struct {
	Version int     `toml:"version" yaml:"version" json:"version"`
	Entries []Entry `toml:"entries" yaml:"entries" json:"entries"`
}

// Files adapts the entries for diffing
func (m *Manifest) Files() []diff.File {
	out := make([]diff.File, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, manifestFile{entry: e})
	}
	return out
}

type manifestFile struct {
	entry Entry
}

func (f manifestFile) Key() string        { return f.entry.Reference().Key() }
func (f manifestFile) CompareKey() string { return f.entry.CompareKey }
func (f manifestFile) String() string {
	switch {
	case f.entry.Name != "":
		return f.entry.Name
	case f.entry.Path != "":
		return f.entry.Path
	}
	return f.Key()
}

// Encode serializes the manifest
func (m *Manifest) Encode(format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(m)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(m); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case FormatJSON:
		data, err = json.MarshalIndent(m, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown manifest format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestEncode, "failed to encode %s manifest", format)
	}
	return data, nil
}

// DecodeManifest parses a manifest
func DecodeManifest(data []byte, format Format) (*Manifest, error) {
	var (
		m   Manifest
		err error
	)
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	case FormatJSON:
		err = json.Unmarshal(data, &m)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown manifest format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestDecode, "failed to decode %s manifest", format)
	}
	if m.Version > ManifestVersion {
		return nil, errors.Newf(errors.ErrManifestDecode, "manifest version %d is newer than supported version %d",
			m.Version, ManifestVersion)
	}
	return &m, nil
}

// ReadManifest loads a manifest, inferring its format from the extension
func ReadManifest(fsys filesystem.FS, path string) (*Manifest, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read manifest").
			WithDetail("path", path)
	}

	m, err := DecodeManifest(data, format)
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("export.manifest")
	logger.Debug().
		Str("path", path).
		Int("entries", len(m.Entries)).
		Msg("Read manifest")
	return m, nil
}
