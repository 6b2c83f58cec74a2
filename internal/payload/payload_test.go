package payload

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/imdisperser/iminstall/internal/errdefs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLayout(t *testing.T) {
	tests := []struct {
		format  Format
		name    string
		ext     string
		relPath string
	}{
		{FormatVST3, "VST3", "vst3", filepath.Join("im_disperser", "Contents", "im_disperser.vst3")},
		{FormatCLAP, "CLAP", "clap", filepath.Join("im_disperser", "im_disperser.clap")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.format.String())
			assert.Equal(t, tt.ext, tt.format.Extension())
			assert.Equal(t, tt.relPath, tt.format.RelPath())
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("vst3")
	require.NoError(t, err)
	assert.Equal(t, FormatVST3, f)

	f, err = ParseFormat("CLAP")
	require.NoError(t, err)
	assert.Equal(t, FormatCLAP, f)

	_, err = ParseFormat("au")
	assert.Error(t, err)
}

func TestDefaultRoots(t *testing.T) {
	win := DefaultRoots("windows")
	assert.Equal(t, `C:\Program Files\Common Files\VST3`, win[FormatVST3])
	assert.Equal(t, `C:\Program Files\Common Files\CLAP`, win[FormatCLAP])

	mac := DefaultRoots("darwin")
	assert.Equal(t, "/Library/Audio/Plug-Ins/VST3", mac[FormatVST3])

	for _, goos := range []string{"linux", "freebsd"} {
		roots := DefaultRoots(goos)
		assert.Len(t, roots, len(All()), goos)
		assert.Equal(t, "/usr/lib/clap", roots[FormatCLAP])
	}
}

func TestSources(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		src := &EmbeddedSource{fsys: fstest.MapFS{
			"bundled/im_disperser.clap": {Data: []byte("clap-bin")},
		}}

		data, err := src.Payload(FormatCLAP)
		require.NoError(t, err)
		assert.Equal(t, []byte("clap-bin"), data)

		_, err = src.Payload(FormatVST3)
		assert.True(t, errdefs.IsType(err, errdefs.ErrTypePayloadMissing))
	})

	t.Run("directory", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/build/im_disperser.vst3", []byte("vst3-bin"), 0644))
		src := NewDirSource(fsys, "/build")

		data, err := src.Payload(FormatVST3)
		require.NoError(t, err)
		assert.Equal(t, []byte("vst3-bin"), data)

		_, err = src.Payload(FormatCLAP)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No CLAP payload bundled")
	})

	t.Run("map", func(t *testing.T) {
		src := MapSource{FormatVST3: []byte{1, 2, 3}}

		data, err := src.Payload(FormatVST3)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, data)

		_, err = src.Payload(FormatCLAP)
		assert.True(t, errdefs.IsType(err, errdefs.ErrTypePayloadMissing))
	})
}
