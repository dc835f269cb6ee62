package nodelink

import (
	"os/exec"
	"runtime"

	errs "github.com/urbancharge/urbancharge/pkg/errors"
)

// Open shows the file at path in the platform's default viewer without
// waiting for it to exit. It returns UNAVAILABLE when no viewer can be started.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		return errs.New(errs.ErrCodeUnavailable, "no image viewer on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return errs.Wrap(errs.ErrCodeUnavailable, err, "open %s", path)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
