package platform

// playerCommand prefers PulseAudio/PipeWire and falls back to ALSA.
func playerCommand(lookup func(string) (string, error), path string) (string, []string, error) {
	if command, err := lookup("paplay"); err == nil {
		return command, []string{path}, nil
	}
	if command, err := lookup("aplay"); err == nil {
		return command, []string{"-q", path}, nil
	}
	return "", nil, ErrPlayerUnavailable
}
