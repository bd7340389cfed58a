// Package composer is the window for writing a post to a channel.
package composer

import (
	"context"
	"io"
	"strings"
	"time"

	"devruntime/internal/post"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const requestTimeout = 30 * time.Second

// Window lets the user write a post with an optional image.
type Window struct {
	window     fyne.Window
	store      *post.Store
	channels   []post.Channel
	title      *widget.Entry
	content    *widget.Entry
	channel    *widget.Select
	imageLabel *widget.Label
	status     *widget.Label
	submit     *widget.Button
}

// New creates the composer window.
func New(app fyne.App, store *post.Store) *Window {
	window := app.NewWindow("Write a post")
	composer := &Window{
		window:     window,
		store:      store,
		title:      widget.NewEntry(),
		content:    widget.NewMultiLineEntry(),
		imageLabel: widget.NewLabel("No image"),
		status:     widget.NewLabel(""),
	}
	composer.title.SetPlaceHolder("Title")
	composer.content.SetPlaceHolder("What did you work on?")
	composer.content.SetMinRowsVisible(5)
	composer.channel = widget.NewSelect(nil, composer.selectChannel)

	attach := widget.NewButton("Attach image", composer.pickImage)
	removeImage := widget.NewButton("Remove", func() {
		composer.store.SetImage(nil)
		composer.imageLabel.SetText("No image")
	})
	composer.submit = widget.NewButton("Post", composer.handleSubmit)
	cancel := widget.NewButton("Cancel", func() {
		window.Hide()
	})

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Channel", composer.channel),
			widget.NewFormItem("Title", composer.title),
		),
		composer.content,
		container.NewHBox(attach, removeImage, composer.imageLabel),
		composer.status,
	)
	buttons := container.NewHBox(composer.submit, layout.NewSpacer(), cancel)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(460, 420))
	return composer
}

// Show loads channels and displays the window.
func (composer *Window) Show() {
	composer.window.Show()
	composer.window.RequestFocus()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		composer.store.FetchChannels(ctx)
		fyne.Do(composer.refreshChannels)
	}()
}

// Close destroys the window.
func (composer *Window) Close() {
	composer.window.Close()
}

func (composer *Window) refreshChannels() {
	composer.channels = composer.store.Channels()
	names := make([]string, 0, len(composer.channels))
	selected := ""
	for _, channel := range composer.channels {
		names = append(names, channel.Name)
		if channel.ID == composer.store.ChannelID() {
			selected = channel.Name
		}
	}
	composer.channel.SetOptions(names)
	if selected != "" {
		composer.channel.SetSelected(selected)
	}
	composer.status.SetText(composer.store.Error())
}

func (composer *Window) selectChannel(name string) {
	for _, channel := range composer.channels {
		if channel.Name == name {
			composer.store.SetChannel(channel.ID)
			return
		}
	}
}

func (composer *Window) pickImage() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, composer.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		content, err := io.ReadAll(reader)
		if err != nil {
			dialog.ShowError(err, composer.window)
			return
		}
		composer.store.SetImage(&post.Image{Name: reader.URI().Name(), Content: content})
		composer.imageLabel.SetText(reader.URI().Name())
	}, composer.window)
}

func (composer *Window) handleSubmit() {
	title := strings.TrimSpace(composer.title.Text)
	if title == "" {
		composer.status.SetText("A title is required.")
		return
	}
	content := composer.content.Text
	channelID := composer.store.ChannelID()
	image := composer.store.Image()

	composer.submit.Disable()
	composer.status.SetText("Posting...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		ok := composer.store.Post(ctx, title, content, channelID, image)
		fyne.Do(func() {
			composer.finishSubmit(ok)
		})
	}()
}

func (composer *Window) finishSubmit(ok bool) {
	composer.submit.Enable()
	if !ok {
		composer.status.SetText(composer.store.Error())
		return
	}
	composer.status.SetText("")
	composer.title.SetText("")
	composer.content.SetText("")
	composer.store.SetImage(nil)
	composer.imageLabel.SetText("No image")
	dialog.ShowInformation("Posted", "Your post has been published.", composer.window)
}
