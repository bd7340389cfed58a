package post

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed request.
type ErrorKind int

const (
	// KindStatus means the server answered with a non-2xx status.
	KindStatus ErrorKind = iota
	// KindNoResponse means the request was sent but no response arrived.
	KindNoResponse
	// KindRequest means the request could not be built or sent.
	KindRequest
)

const (
	messageNoResponse    = "No response from the server. Please check your network connection."
	messageRequestFailed = "Something went wrong while sending the request. Please try again."
	messageChannels      = "Failed to load the channel list."
)

var statusMessages = map[int]string{
	http.StatusBadRequest:            "Invalid request. Please check your input.",
	http.StatusUnauthorized:          "Unauthorized request. Please log in again.",
	http.StatusForbidden:             "You do not have permission. Please contact an administrator.",
	http.StatusNotFound:              "The requested resource could not be found.",
	http.StatusRequestEntityTooLarge: "The request exceeds the limit allowed by the server.",
	http.StatusInternalServerError:   "The server encountered an error. Please try again later.",
}

// MessageForStatus returns the user-facing message for an HTTP error status.
func MessageForStatus(status int) string {
	if message, ok := statusMessages[status]; ok {
		return message
	}
	return fmt.Sprintf("An unknown error occurred. (Error Code: %d)", status)
}

// RequestError is a classified posts API failure.
type RequestError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (err *RequestError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("%s: %v", err.Message, err.Err)
	}
	return err.Message
}

func (err *RequestError) Unwrap() error {
	return err.Err
}

// UserMessage extracts the message to show for any error.
func UserMessage(err error) string {
	var requestErr *RequestError
	if errors.As(err, &requestErr) {
		return requestErr.Message
	}
	return messageRequestFailed
}

func statusError(status int, body string) *RequestError {
	var cause error
	if body != "" {
		cause = errors.New(body)
	}
	return &RequestError{Kind: KindStatus, Status: status, Message: MessageForStatus(status), Err: cause}
}

func noResponseError(err error) *RequestError {
	return &RequestError{Kind: KindNoResponse, Message: messageNoResponse, Err: err}
}

func requestError(err error) *RequestError {
	return &RequestError{Kind: KindRequest, Message: messageRequestFailed, Err: err}
}
