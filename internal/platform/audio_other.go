//go:build !linux && !darwin && !windows

package platform

func playerCommand(lookup func(string) (string, error), path string) (string, []string, error) {
	return "", nil, ErrPlayerUnavailable
}
