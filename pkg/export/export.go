package export

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/amlpack/pkg/errors"
	"github.com/arthur-debert/amlpack/pkg/filesystem"
	"github.com/arthur-debert/amlpack/pkg/logging"
	"github.com/arthur-debert/amlpack/pkg/paths"
	"github.com/arthur-debert/amlpack/pkg/types"
)

// Bundle holds the rendered files of one export (relative path to content)
// and its manifest. Paths use forward slashes.
type Bundle struct {
	files    map[string][]byte
	Manifest *Manifest
}

// Paths returns the file paths of the bundle, sorted
func (b *Bundle) Paths() []string {
	out := make([]string, 0, len(b.files))
	for p := range b.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// File returns the content planned for p
func (b *Bundle) File(p string) ([]byte, bool) {
	data, ok := b.files[p]
	return data, ok
}

// Len returns the number of files in the bundle
func (b *Bundle) Len() int {
	return len(b.files)
}

// Plan allocates a path for every item and renders its content. Items are
// visited in order, so the same batch always yields the same layout.
// Nothing is written.
func Plan(items []*types.InstallItem, alloc *paths.Allocator) (*Bundle, error) {
	b := &Bundle{
		files:    make(map[string][]byte, len(items)),
		Manifest: &Manifest{Version: ManifestVersion},
	}

	for _, item := range items {
		entry := NewEntry(item)
		if item.Variant() == types.VariantWarning {
			b.Manifest.Entries = append(b.Manifest.Entries, entry)
			continue
		}

		if alloc.OverrideTaken(item) {
			return nil, errors.Newf(errors.ErrInvalidInput, "cannot place %s: path is already taken", item.Name()).
				WithDetail("path", paths.OverridePath(item))
		}
		p := alloc.Allocate(item)
		if err := paths.ValidateRelative(p); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot place %s", item.Name()).
				WithDetail("path", p)
		}

		content, err := item.Content()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to render %s", item.Name())
		}

		b.files[p] = content
		entry.Path = p
		b.Manifest.Entries = append(b.Manifest.Entries, entry)
	}

	logger := logging.GetLogger("export")
	logger.Debug().
		Int("items", len(items)).
		Int("files", len(b.files)).
		Msg("Planned export")
	return b, nil
}

// Options configures Write
type Options struct {
	// Manifest is the manifest file name relative to the root. Empty skips
	// the manifest.
	Manifest string
	// Format overrides the format inferred from the manifest name.
	Format Format
}

// Write materializes the bundle under root in sorted path order.
func Write(fsys filesystem.FS, bundle *Bundle, root string, opts Options) error {
	logger := logging.GetLogger("export")
	done := logging.LogOperationStart(logger, "write export")
	defer done()

	var manifest []byte
	if opts.Manifest != "" {
		if _, clash := bundle.files[filepath.ToSlash(opts.Manifest)]; clash {
			return errors.Newf(errors.ErrInvalidInput, "manifest %q collides with an exported file", opts.Manifest)
		}

		format := opts.Format
		if format == "" {
			var err error
			if format, err = FormatForPath(opts.Manifest); err != nil {
				return err
			}
		}

		var err error
		if manifest, err = bundle.Manifest.Encode(format); err != nil {
			return err
		}
	}

	for _, p := range bundle.Paths() {
		if err := writeFile(fsys, filepath.Join(root, filepath.FromSlash(p)), bundle.files[p]); err != nil {
			return err
		}
	}

	if manifest != nil {
		if err := writeFile(fsys, filepath.Join(root, opts.Manifest), manifest); err != nil {
			return err
		}
	}

	logger.Info().
		Str("root", root).
		Int("files", bundle.Len()).
		Bool("manifest", manifest != nil).
		Msg("Wrote export")
	return nil
}

func writeFile(fsys filesystem.FS, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory").
			WithDetail("path", dir)
	}
	if err := fsys.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write file").
			WithDetail("path", path)
	}
	logger := logging.GetLogger("export")
	logger.Trace().Str("path", path).Int("bytes", len(data)).Msg("Wrote file")
	return nil
}
