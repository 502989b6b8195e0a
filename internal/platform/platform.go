// Package platform resolves the host OS into the two-valued family enum
// that every resolution strategy is keyed on.
package platform

import (
	"fmt"
	"runtime"
)

// Family identifies which command dialect to generate.
type Family string

const (
	Windows Family = "windows"
	Linux   Family = "linux"
)

// Detect resolves the family from the host platform identifier. Anything
// that is not Windows is treated as the Linux family, matching the
// command tables we ship.
func Detect() Family {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Linux
}

// Parse validates a family name coming from config or a flag.
func Parse(s string) (Family, error) {
	switch Family(s) {
	case Windows, Linux:
		return Family(s), nil
	case "":
		return Detect(), nil
	}
	return "", fmt.Errorf("unknown os family %q (want windows or linux)", s)
}

// PathSep is the separator used when a resolved folder is spliced into a
// later segment's filename reference.
func (f Family) PathSep() string {
	if f == Windows {
		return `\`
	}
	return "/"
}
