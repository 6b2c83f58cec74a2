package osinfo

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/imdisperser/iminstall/internal/errdefs"
)

// AllSupportedOS lists the platforms the bundled plugin binaries are built for.
var AllSupportedOS = []string{
	"windows",
	"darwin",
	"linux",
}

type OSInfo struct {
	OS           string
	Version      string
	PrettyName   string
	Architecture string
}

var getOsFunc = getGoos
var getArchFunc = getGoarch

func getGoos() string {
	return runtime.GOOS
}

func getGoarch() string {
	return runtime.GOARCH
}

func IsSupported(goos string) bool {
	return slices.Contains(AllSupportedOS, goos)
}

func GetOSInfo() (*OSInfo, error) {
	goos := getOsFunc()
	if !IsSupported(goos) {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeGeneric, fmt.Sprintf("Unsupported operating system: %s", goos))
	}

	info := &OSInfo{
		OS:           goos,
		Architecture: getArchFunc(),
	}

	switch goos {
	case "linux":
		if err := detectLinuxDistro(info); err != nil {
			// os-release is cosmetic here; the install roots don't depend on it
			info.PrettyName = "Linux"
		}
	case "darwin":
		info.PrettyName = "macOS"
	case "windows":
		info.PrettyName = "Windows"
	}

	return info, nil
}

func (i *OSInfo) String() string {
	if i.Version != "" {
		return fmt.Sprintf("%s %s (%s)", i.PrettyName, i.Version, i.Architecture)
	}
	return fmt.Sprintf("%s (%s)", i.PrettyName, i.Architecture)
}
