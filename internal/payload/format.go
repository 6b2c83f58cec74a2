package payload

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProductName is the plugin's directory and file stem under every install root.
const ProductName = "im_disperser"

type Format int

const (
	FormatVST3 Format = iota
	FormatCLAP
)

// All returns every known format in deployment order.
func All() []Format {
	return []Format{FormatVST3, FormatCLAP}
}

func (f Format) String() string {
	switch f {
	case FormatVST3:
		return "VST3"
	case FormatCLAP:
		return "CLAP"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func (f Format) Extension() string {
	return strings.ToLower(f.String())
}

// FileName is the payload's file name, both in the bundle and on disk.
func (f Format) FileName() string {
	return ProductName + "." + f.Extension()
}

// RelPath is the fixed install location below a destination root. VST3 uses
// the bundle layout; CLAP is a single file in a product directory.
func (f Format) RelPath() string {
	switch f {
	case FormatVST3:
		return filepath.Join(ProductName, "Contents", f.FileName())
	default:
		return filepath.Join(ProductName, f.FileName())
	}
}

func ParseFormat(s string) (Format, error) {
	for _, f := range All() {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown plugin format %q (want vst3 or clap)", s)
}
