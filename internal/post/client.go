// Package post submits short text posts with an optional image to channels.
package post

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// Channel is a destination for posts.
type Channel struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Image is an attachment uploaded with a post.
type Image struct {
	Name    string
	Content []byte
}

// Submission is one post to create.
type Submission struct {
	Title     string
	Content   string
	ChannelID string
	Image     *Image
}

type titlePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// API is the posts backend.
type API interface {
	Channels(ctx context.Context) ([]Channel, error)
	Create(ctx context.Context, submission Submission) error
}

// Client is an HTTP client for the posts backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a posts API client.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Channels lists the available channels.
func (client *Client) Channels(ctx context.Context) ([]Channel, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+"/channels", nil)
	if err != nil {
		return nil, requestError(fmt.Errorf("create request: %w", err))
	}

	body, err := client.do(request)
	if err != nil {
		return nil, err
	}

	var channels []Channel
	if err := json.Unmarshal(body, &channels); err != nil {
		return nil, requestError(fmt.Errorf("unmarshal channels: %w", err))
	}
	return channels, nil
}

// Create uploads a post as multipart form data.
func (client *Client) Create(ctx context.Context, submission Submission) error {
	body, contentType, err := encodeSubmission(submission)
	if err != nil {
		return requestError(err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+"/posts/create", body)
	if err != nil {
		return requestError(fmt.Errorf("create request: %w", err))
	}
	request.Header.Set("Content-Type", contentType)

	response, err := client.do(request)
	if err != nil {
		return err
	}
	client.logger.Info("post created", "channel", submission.ChannelID, "bytes", len(response))
	return nil
}

func (client *Client) do(request *http.Request) ([]byte, error) {
	if client.token != "" {
		request.Header.Set("Authorization", "bearer "+client.token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, noResponseError(fmt.Errorf("execute request: %w", err))
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, noResponseError(fmt.Errorf("read response: %w", err))
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, statusError(response.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func encodeSubmission(submission Submission) (io.Reader, string, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	title, err := json.Marshal(titlePayload{Title: submission.Title, Content: submission.Content})
	if err != nil {
		return nil, "", fmt.Errorf("marshal title: %w", err)
	}
	if err := writer.WriteField("title", string(title)); err != nil {
		return nil, "", fmt.Errorf("write title field: %w", err)
	}
	if err := writer.WriteField("channelId", submission.ChannelID); err != nil {
		return nil, "", fmt.Errorf("write channel field: %w", err)
	}

	if submission.Image == nil {
		// the backend expects the literal string when no file is attached
		if err := writer.WriteField("image", "null"); err != nil {
			return nil, "", fmt.Errorf("write image field: %w", err)
		}
	} else {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, submission.Image.Name))
		header.Set("Content-Type", http.DetectContentType(submission.Image.Content))
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(submission.Image.Content); err != nil {
			return nil, "", fmt.Errorf("write image part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buffer, writer.FormDataContentType(), nil
}
