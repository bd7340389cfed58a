package platform

func playerCommand(lookup func(string) (string, error), path string) (string, []string, error) {
	command, err := lookup("afplay")
	if err != nil {
		return "", nil, ErrPlayerUnavailable
	}
	return command, []string{path}, nil
}
