package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is a terminal. Anything exposing Fd, such as
// *os.File, is checked; other writers never are.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI colors should be written to w.
//
// FORCE_COLOR or CLICOLOR_FORCE turn color on even when w is piped, which
// keeps deploy summaries colored under CI log viewers. NO_COLOR and
// TERM=dumb turn it off. Otherwise color follows IsTTY.
func SupportsColor(w io.Writer) bool {
	return colorDecision(os.LookupEnv, IsTTY(w))
}

func colorDecision(lookup func(string) (string, bool), isTTY bool) bool {
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if v, _ := lookup("TERM"); v == "dumb" {
		return false
	}
	for _, key := range []string{"FORCE_COLOR", "CLICOLOR_FORCE"} {
		if v, ok := lookup(key); ok && v != "" && v != "0" {
			return true
		}
	}
	return isTTY
}
