package osinfo

import (
	"bufio"
	"os"
	"strings"

	"github.com/imdisperser/iminstall/internal/errdefs"
)

var osOpen = os.Open

func detectLinuxDistro(info *OSInfo) error {
	if err := readOSRelease(info); err == nil {
		return nil
	}

	return errdefs.NewCustomError(errdefs.ErrTypeGeneric, "Failed to detect Linux distribution")
}

func readOSRelease(info *OSInfo) error {
	file, err := osOpen("/etc/os-release")
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), "=", 2)
		if len(parts) != 2 {
			continue
		}

		value := strings.Trim(parts[1], "\"")

		switch parts[0] {
		case "VERSION_ID":
			info.Version = value
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}
	if info.PrettyName == "" {
		info.PrettyName = "Linux"
	}
	return nil
}
