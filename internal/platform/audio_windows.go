package platform

import (
	"fmt"
	"strings"
)

func playerCommand(lookup func(string) (string, error), path string) (string, []string, error) {
	command, err := lookup("powershell")
	if err != nil {
		return "", nil, ErrPlayerUnavailable
	}
	escaped := strings.ReplaceAll(path, "'", "''")
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", escaped)
	return command, []string{"-NoProfile", "-NonInteractive", "-Command", script}, nil
}
