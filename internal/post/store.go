package post

import (
	"context"
	"log/slog"
	"sync"
)

// Store keeps the state of the post composer: channel list, selection,
// attachment, loading flag and the last error message.
type Store struct {
	mu        sync.RWMutex
	api       API
	logger    *slog.Logger
	channels  []Channel
	channelID string
	image     *Image
	isLoading bool
	err       string
}

// NewStore creates a composer store backed by the API.
func NewStore(api API, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{api: api, logger: logger}
}

// Channels returns the loaded channel list.
func (store *Store) Channels() []Channel {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return append([]Channel(nil), store.channels...)
}

// ChannelID returns the selected channel.
func (store *Store) ChannelID() string {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.channelID
}

// Image returns the pending attachment.
func (store *Store) Image() *Image {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.image
}

// IsLoading reports whether a submission is in flight.
func (store *Store) IsLoading() bool {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.isLoading
}

// Error returns the last user-facing error, or "".
func (store *Store) Error() string {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.err
}

// SetChannel selects a channel.
func (store *Store) SetChannel(id string) {
	store.mu.Lock()
	store.channelID = id
	store.mu.Unlock()
}

// SetImage sets or clears the attachment.
func (store *Store) SetImage(image *Image) {
	store.mu.Lock()
	store.image = image
	store.mu.Unlock()
}

// FetchChannels loads the channel list and selects the first channel.
// An empty list leaves the current state untouched.
func (store *Store) FetchChannels(ctx context.Context) {
	channels, err := store.api.Channels(ctx)
	if err != nil {
		store.logger.Error("fetch channels", "error", err)
		store.mu.Lock()
		store.err = messageChannels
		store.mu.Unlock()
		return
	}
	if len(channels) == 0 {
		return
	}

	store.mu.Lock()
	store.channels = channels
	store.channelID = channels[0].ID
	store.mu.Unlock()
}

// Post submits a post. Failures are absorbed into Error; the store always
// leaves the loading state.
func (store *Store) Post(ctx context.Context, title, content, channelID string, image *Image) bool {
	store.mu.Lock()
	store.isLoading = true
	store.err = ""
	store.mu.Unlock()

	defer func() {
		store.mu.Lock()
		store.isLoading = false
		store.mu.Unlock()
	}()

	err := store.api.Create(ctx, Submission{
		Title:     title,
		Content:   content,
		ChannelID: channelID,
		Image:     image,
	})
	if err != nil {
		store.logger.Warn("create post", "channel", channelID, "error", err)
		store.mu.Lock()
		store.err = UserMessage(err)
		store.mu.Unlock()
		return false
	}
	return true
}
