package post

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type receivedPost struct {
	title         titlePayload
	channelID     string
	imageValue    string
	imageName     string
	imageContent  string
	authorization string
}

func newFakeBackend(t *testing.T, status int, received *receivedPost) *httptest.Server {
	t.Helper()
	router := chi.NewRouter()
	router.Get("/channels", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"c1","name":"general","description":"all"},{"_id":"c2","name":"study"}]`))
	})
	router.Post("/posts/create", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if received != nil {
			_ = json.Unmarshal([]byte(r.FormValue("title")), &received.title)
			received.channelID = r.FormValue("channelId")
			received.imageValue = r.FormValue("image")
			received.authorization = r.Header.Get("Authorization")
			if file, header, err := r.FormFile("image"); err == nil {
				content, _ := io.ReadAll(file)
				received.imageName = header.Filename
				received.imageContent = string(content)
				_ = file.Close()
			}
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"_id":"p1"}`))
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestClientChannels(t *testing.T) {
	server := newFakeBackend(t, http.StatusOK, nil)
	client := NewClient(server.URL+"/", "", nil)

	channels, err := client.Channels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(channels) != 2 || channels[0].ID != "c1" || channels[1].Name != "study" {
		t.Fatalf("channels = %+v", channels)
	}
}

func TestClientCreateWithoutImage(t *testing.T) {
	var received receivedPost
	server := newFakeBackend(t, http.StatusCreated, &received)
	client := NewClient(server.URL, "token-1", nil)

	err := client.Create(context.Background(), Submission{Title: "Day 3", Content: "2h done", ChannelID: "c1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received.title != (titlePayload{Title: "Day 3", Content: "2h done"}) {
		t.Fatalf("title = %+v", received.title)
	}
	if received.channelID != "c1" {
		t.Fatalf("channelId = %q", received.channelID)
	}
	if received.imageValue != "null" {
		t.Fatalf("image = %q, want literal null", received.imageValue)
	}
	if received.authorization != "bearer token-1" {
		t.Fatalf("authorization = %q", received.authorization)
	}
}

func TestClientCreateWithImage(t *testing.T) {
	var received receivedPost
	server := newFakeBackend(t, http.StatusOK, &received)
	client := NewClient(server.URL, "", nil)

	image := &Image{Name: "desk.png", Content: []byte("\x89PNG\r\n\x1a\nrest")}
	if err := client.Create(context.Background(), Submission{Title: "t", ChannelID: "c2", Image: image}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received.imageName != "desk.png" || received.imageContent != string(image.Content) {
		t.Fatalf("image = %q (%d bytes)", received.imageName, len(received.imageContent))
	}
}

func TestClientStatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "Invalid request"},
		{http.StatusUnauthorized, "log in again"},
		{http.StatusForbidden, "permission"},
		{http.StatusNotFound, "could not be found"},
		{http.StatusRequestEntityTooLarge, "exceeds the limit"},
		{http.StatusInternalServerError, "server encountered an error"},
		{http.StatusTeapot, "(Error Code: 418)"},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := newFakeBackend(t, tt.status, nil)
			client := NewClient(server.URL, "", nil)

			err := client.Create(context.Background(), Submission{Title: "t", ChannelID: "c1"})
			var requestErr *RequestError
			if !errors.As(err, &requestErr) {
				t.Fatalf("expected RequestError, got %v", err)
			}
			if requestErr.Kind != KindStatus || requestErr.Status != tt.status {
				t.Fatalf("kind=%v status=%d", requestErr.Kind, requestErr.Status)
			}
			if !strings.Contains(requestErr.Message, tt.want) {
				t.Fatalf("message = %q, want it to contain %q", requestErr.Message, tt.want)
			}
			if seen[requestErr.Message] {
				t.Fatalf("message %q is not distinct", requestErr.Message)
			}
			seen[requestErr.Message] = true
		})
	}
}

func TestClientNoResponse(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, "", nil)
	err := client.Create(context.Background(), Submission{Title: "t", ChannelID: "c1"})
	var requestErr *RequestError
	if !errors.As(err, &requestErr) || requestErr.Kind != KindNoResponse {
		t.Fatalf("expected no-response error, got %v", err)
	}
	if UserMessage(err) != messageNoResponse {
		t.Fatalf("message = %q", UserMessage(err))
	}
}

func TestClientRequestNeverSent(t *testing.T) {
	client := NewClient("http://bad host", "", nil)
	_, err := client.Channels(context.Background())
	var requestErr *RequestError
	if !errors.As(err, &requestErr) || requestErr.Kind != KindRequest {
		t.Fatalf("expected request error, got %v", err)
	}
	if UserMessage(err) != messageRequestFailed {
		t.Fatalf("message = %q", UserMessage(err))
	}
}

func TestUserMessageForUnclassifiedError(t *testing.T) {
	if got := UserMessage(errors.New("boom")); got != messageRequestFailed {
		t.Fatalf("message = %q", got)
	}
}
