// Package naming turns desired logical names into filesystem-legal names for
// a target platform and composes the generated base names.
package naming

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Profile is the filename-legality rule set for one target OS. Sanitization
// is a pure function of its input: calling it twice returns the same name.
type Profile interface {
	// String names the profile ("posix" or "windows").
	String() string
	// FileName returns a legal file name for this platform.
	FileName(name string) string
	// DirName returns a legal directory name for this platform.
	DirName(name string) string
}

// ForPlatform selects the effective profile: Windows when forced by flag or
// when the host itself is Windows, POSIX otherwise.
func ForPlatform(forceWindows bool) Profile {
	if forceWindows || runtime.GOOS == "windows" {
		return Windows
	}
	return POSIX
}

var (
	POSIX   Profile = posixProfile{}
	Windows Profile = windowsProfile{}
)

type posixProfile struct{}

func (posixProfile) String() string { return "posix" }

func (posixProfile) FileName(name string) string { return posixClean(name) }

func (posixProfile) DirName(name string) string { return posixClean(name) }

func posixClean(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == 0 {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return "unnamed"
	}
	return name
}

type windowsProfile struct{}

func (windowsProfile) String() string { return "windows" }

// MaxNameLength caps generated names well under the Windows MAX_PATH limit,
// leaving room for the output root prefix.
const MaxNameLength = 200

// Characters rejected by NTFS plus cmd.exe troublemakers (& ^ %).
const windowsInvalid = `<>:"/\|?*&^%`

var windowsReserved = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

func (windowsProfile) FileName(name string) string {
	base, ext := splitExt(name)
	base = windowsClean(base)
	if windowsReserved[strings.ToUpper(base)] {
		base += "_file"
	}
	max := MaxNameLength - len(ext)
	if max < 0 {
		max = 0
	}
	if len(base) > max {
		base = base[:max]
		base = strings.TrimRight(base, " .")
	}
	if base == "" {
		base = "unnamed"
	}
	return base + ext
}

func (windowsProfile) DirName(name string) string {
	name = windowsClean(name)
	if windowsReserved[strings.ToUpper(name)] {
		name += "_dir"
	}
	if len(name) > MaxNameLength {
		name = strings.TrimRight(name[:MaxNameLength], " .")
	}
	if name == "" {
		name = "unnamed"
	}
	return name
}

func windowsClean(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == 0 || strings.ContainsRune(windowsInvalid, r) {
			return '_'
		}
		return r
	}, s)
	return strings.Trim(s, " .")
}

// splitExt splits "Report_v2.docx" into ("Report_v2", ".docx"). Names without
// a dot have an empty extension.
func splitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)], ext
}

// Disambiguate appends the planning sequence index before the extension so
// colliding names resolve deterministically, without filesystem probes.
func Disambiguate(name string, seq int) string {
	base, ext := splitExt(name)
	return fmt.Sprintf("%s_%d%s", base, seq, ext)
}
