package main

import (
	"os/exec"
	"runtime"
)

// openFile opens path with the host's default file association.
// Best effort: the caller only logs a failure.
func openFile(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
