package payload

// DefaultRoots returns the OS-conventional shared plugin directories.
func DefaultRoots(goos string) map[Format]string {
	switch goos {
	case "windows":
		return map[Format]string{
			FormatVST3: `C:\Program Files\Common Files\VST3`,
			FormatCLAP: `C:\Program Files\Common Files\CLAP`,
		}
	case "darwin":
		return map[Format]string{
			FormatVST3: "/Library/Audio/Plug-Ins/VST3",
			FormatCLAP: "/Library/Audio/Plug-Ins/CLAP",
		}
	default:
		return map[Format]string{
			FormatVST3: "/usr/lib/vst3",
			FormatCLAP: "/usr/lib/clap",
		}
	}
}
