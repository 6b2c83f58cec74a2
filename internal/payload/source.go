package payload

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/imdisperser/iminstall/internal/errdefs"
	"github.com/spf13/afero"
)

// Source supplies the plugin binary for a format.
type Source interface {
	Payload(f Format) ([]byte, error)
}

//go:embed bundled
var bundled embed.FS

// EmbeddedSource serves the binaries compiled into the installer by the
// packaging step (see bundled/README.md).
type EmbeddedSource struct {
	fsys fs.FS
}

func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{fsys: bundled}
}

func (s *EmbeddedSource) Payload(f Format) ([]byte, error) {
	name := path.Join("bundled", f.FileName())
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, missing(f, name, err)
	}
	return data, nil
}

// DirSource reads payloads from a directory, e.g. a build output folder
// configured with --payload-dir.
type DirSource struct {
	fs  afero.Fs
	dir string
}

func NewDirSource(fsys afero.Fs, dir string) *DirSource {
	return &DirSource{fs: fsys, dir: dir}
}

func (s *DirSource) Payload(f Format) ([]byte, error) {
	name := filepath.Join(s.dir, f.FileName())
	data, err := afero.ReadFile(s.fs, name)
	if err != nil {
		return nil, missing(f, name, err)
	}
	return data, nil
}

// MapSource holds payloads in memory.
type MapSource map[Format][]byte

func (s MapSource) Payload(f Format) ([]byte, error) {
	data, ok := s[f]
	if !ok {
		return nil, missing(f, f.FileName(), fs.ErrNotExist)
	}
	return data, nil
}

func missing(f Format, name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return errdefs.Wrap(errdefs.ErrTypePayloadMissing, fmt.Sprintf("No %s payload bundled with this installer", f), name, err)
	}
	return errdefs.Wrap(errdefs.ErrTypePayloadMissing, fmt.Sprintf("Failed to read %s payload", f), name, err)
}
