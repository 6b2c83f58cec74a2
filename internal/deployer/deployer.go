package deployer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/imdisperser/iminstall/internal/errdefs"
	"github.com/imdisperser/iminstall/internal/log"
	"github.com/imdisperser/iminstall/internal/payload"
	"github.com/spf13/afero"
)

type PayloadDeployer struct {
	fs     afero.Fs
	source payload.Source
}

type DeploymentResult struct {
	Format   payload.Format
	Path     string
	Deployed bool
	Error    error
}

func NewPayloadDeployer(fs afero.Fs, source payload.Source) *PayloadDeployer {
	return &PayloadDeployer{
		fs:     fs,
		source: source,
	}
}

// Deploy writes payload to root/rel, creating any missing parent directories
// and overwriting an existing file. It returns the path written.
func (d *PayloadDeployer) Deploy(data []byte, root, rel string) (string, error) {
	return d.deploy("payload", data, root, rel)
}

// DeployFormat looks up the bundled binary for f and deploys it below root.
func (d *PayloadDeployer) DeployFormat(f payload.Format, root string) DeploymentResult {
	result := DeploymentResult{Format: f}

	data, err := d.source.Payload(f)
	if err != nil {
		result.Error = err
		return result
	}

	result.Path, result.Error = d.deploy(f.String(), data, root, f.RelPath())
	result.Deployed = result.Error == nil
	return result
}

// Installed reports whether a file already sits where f would be written.
func (d *PayloadDeployer) Installed(f payload.Format, root string) bool {
	ok, err := afero.Exists(d.fs, filepath.Join(root, f.RelPath()))
	return err == nil && ok
}

func (d *PayloadDeployer) deploy(label string, data []byte, root, rel string) (string, error) {
	if root == "" {
		return "", errdefs.Wrap(errdefs.ErrTypeDirectoryCreation, fmt.Sprintf("Failed to create %s directory", label), root, errors.New("empty destination path"))
	}

	finalPath := filepath.Join(root, rel)
	parent := filepath.Dir(finalPath)

	if err := d.fs.MkdirAll(parent, 0755); err != nil {
		return "", errdefs.Wrap(errdefs.ErrTypeDirectoryCreation, fmt.Sprintf("Failed to create %s directory", label), parent, err)
	}

	// a failed write leaves whatever the OS already committed; retries redeploy in full
	if err := afero.WriteFile(d.fs, finalPath, data, 0644); err != nil {
		return "", errdefs.Wrap(errdefs.ErrTypeWriteFailed, fmt.Sprintf("Failed to write %s file (permission denied?)", label), finalPath, err)
	}

	log.Debug("Wrote payload", "path", finalPath, "bytes", len(data))
	return finalPath, nil
}
