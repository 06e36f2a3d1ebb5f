package service

import (
	"errors"
	"fmt"
)

var ErrTransportUnavailable = errors.New("telegram transport is not initialized")

// StoreError wraps subscribers or checks store failures. The monitor keeps
// running on the last known subscribers when it sees one.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DeliveryError is returned when messages could not be handed to telegram.
// ChatID is zero when the transport itself is unusable.
type DeliveryError struct {
	ChatID int64
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.ChatID == 0 {
		return fmt.Sprintf("deliver message: %v", e.Err)
	}
	return fmt.Sprintf("deliver message to chatID=%d: %v", e.ChatID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// UnexpectedError is a recovered panic from a check cycle
type UnexpectedError struct {
	Cause any
	Stack []byte
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected: %v", e.Cause)
}

func (e *UnexpectedError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
