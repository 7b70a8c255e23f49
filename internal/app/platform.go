package app

import (
	"os/exec"
	"runtime"
	"strings"
)

// detectClipboard finds a copy-to-clipboard command for this system.
func detectClipboard() ([]string, bool) {
	return detectClipboardInternal(runtime.GOOS, exec.LookPath)
}

func detectClipboardInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	trySingle := func(candidates ...string) ([]string, bool) {
		for _, candidate := range candidates {
			if candidate == "" {
				continue
			}
			if path, err := lookPath(candidate); err == nil && path != "" {
				return []string{path}, true
			}
		}
		return nil, false
	}

	if strings.EqualFold(goos, "windows") {
		if cmd, ok := trySingle("clip.exe", "clip"); ok {
			return cmd, true
		}
		for _, ps := range []string{"powershell", "powershell.exe", "pwsh"} {
			if path, err := lookPath(ps); err == nil && path != "" {
				return []string{path, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}, true
			}
		}
	}

	for _, cmd := range []string{"pbcopy", "wl-copy", "xclip", "xsel"} {
		if resolved, err := lookPath(cmd); err == nil && resolved != "" {
			return []string{resolved}, true
		}
	}

	return nil, false
}

// runClipboard pipes text into the detected clipboard command.
func runClipboard(cmdline []string, text string) error {
	cmd := exec.Command(cmdline[0], cmdline[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
