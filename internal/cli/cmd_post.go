package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"devruntime/internal/app"
	"devruntime/internal/post"
)

const requestTimeout = 30 * time.Second

func newChannelsCmd() *cobra.Command {
	var apiURL string
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List the channels you can post to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := postStore(cmd, apiURL)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(commandContext(cmd), requestTimeout)
			defer cancel()

			store.FetchChannels(ctx)
			if message := store.Error(); message != "" {
				return errors.New(message)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, channel := range store.Channels() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", channel.ID, channel.Name, channel.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&apiURL, "api-url", "", "posts API base URL")
	return cmd
}

type postOpts struct {
	apiURL    string
	title     string
	content   string
	channel   string
	imagePath string
}

func newPostCmd() *cobra.Command {
	opts := &postOpts{}
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post to a channel",
		Long: `Post a title and content to a channel, optionally with an image.

Without --channel the first channel returned by the API is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.title) == "" {
				return errors.New("--title is required")
			}
			store, err := postStore(cmd, opts.apiURL)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(commandContext(cmd), requestTimeout)
			defer cancel()

			channelID := opts.channel
			if channelID == "" {
				store.FetchChannels(ctx)
				if message := store.Error(); message != "" {
					return errors.New(message)
				}
				channelID = store.ChannelID()
				if channelID == "" {
					return errors.New("no channel available")
				}
			}

			var image *post.Image
			if opts.imagePath != "" {
				content, err := os.ReadFile(opts.imagePath)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				image = &post.Image{Name: filepath.Base(opts.imagePath), Content: content}
			}

			if !store.Post(ctx, opts.title, opts.content, channelID, image) {
				return errors.New(store.Error())
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "posted to %s\n", channelID)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "posts API base URL")
	cmd.Flags().StringVar(&opts.title, "title", "", "post title")
	cmd.Flags().StringVar(&opts.content, "content", "", "post body")
	cmd.Flags().StringVar(&opts.channel, "channel", "", "channel id")
	cmd.Flags().StringVar(&opts.imagePath, "image", "", "image file to attach")
	return cmd
}

func postStore(cmd *cobra.Command, apiURL string) (*post.Store, error) {
	logger := newLogger(cmd.ErrOrStderr())
	settings, _, err := loadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if apiURL != "" {
		settings.APIURL = strings.TrimRight(apiURL, "/")
	}
	return app.NewPostStore(settings, logger), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
