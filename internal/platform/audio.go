package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// ErrPlayerUnavailable indicates no sound player exists on this system.
var ErrPlayerUnavailable = errors.New("sound player unavailable")

// AudioPlayer plays a cached sound file through the system player.
type AudioPlayer struct {
	mu      sync.Mutex
	dir     string
	name    string
	content []byte
	path    string
	run     func(name string, args ...string) ([]byte, error)
	lookup  func(file string) (string, error)
}

// NewAudioPlayer creates a player for the given sound. The file is written to
// the user cache directory on first playback.
func NewAudioPlayer(appName, name string, content []byte) *AudioPlayer {
	dir := ""
	if cacheDir, err := os.UserCacheDir(); err == nil {
		dir = filepath.Join(cacheDir, appName)
	} else {
		dir = filepath.Join(os.TempDir(), appName)
	}
	return &AudioPlayer{
		dir:     dir,
		name:    name,
		content: content,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		},
		lookup: exec.LookPath,
	}
}

// Play blocks until the sound finished or failed.
func (player *AudioPlayer) Play() error {
	path, err := player.ensureFile()
	if err != nil {
		return err
	}
	command, args, err := playerCommand(player.lookup, path)
	if err != nil {
		return err
	}
	output, err := player.run(command, args...)
	if err != nil {
		return fmt.Errorf("play sound: %s: %w: %s", command, err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (player *AudioPlayer) ensureFile() (string, error) {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.path != "" {
		return player.path, nil
	}
	if err := os.MkdirAll(player.dir, 0o755); err != nil {
		return "", fmt.Errorf("create sound cache dir: %w", err)
	}
	path := filepath.Join(player.dir, player.name)
	if err := os.WriteFile(path, player.content, 0o644); err != nil {
		return "", fmt.Errorf("write sound file: %w", err)
	}
	player.path = path
	return path, nil
}
