// Package notify carries user-facing notices from the action that produced
// them to the next rendered page.
package notify

import (
	"context"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func Success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }
func Error(msg string) Notice   { return Notice{Level: LevelError, Message: msg} }
func Info(msg string) Notice    { return Notice{Level: LevelInfo, Message: msg} }

// FlashStore keeps notices for a session until they are shown once.
type FlashStore interface {
	// Push appends notices for session.
	Push(ctx context.Context, session string, notices ...Notice) error
	// Pop returns and forgets every notice pending for session.
	Pop(ctx context.Context, session string) ([]Notice, error)
}

// DefaultTTL bounds how long an unread notice is kept.
const DefaultTTL = 5 * time.Minute
