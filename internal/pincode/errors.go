package pincode

import (
	"errors"
	"fmt"
)

// User-facing messages for each failure kind.
const (
	MessageInvalid = "Pincode must be a 6-digit number"
	MessageNoData  = "Invalid pincode or no data found."
	MessageNetwork = "Failed to fetch pincode data."
)

// ErrNoData reports that the API answered but had no offices for the code.
var ErrNoData = errors.New(MessageNoData)

// ValidationError is returned for input that is not a 6-digit pincode.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return MessageInvalid
}

// NetworkError wraps transport, HTTP status, and decoding failures.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return MessageNetwork
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Detail describes the underlying cause for logs.
func (e *NetworkError) Detail() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// UserMessage maps a lookup error to the message shown in the UI.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return MessageInvalid
	}
	if errors.Is(err, ErrNoData) {
		return MessageNoData
	}
	return MessageNetwork
}
