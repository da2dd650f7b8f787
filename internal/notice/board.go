// Package notice holds transient, user-visible notices: the "toast"
// surface of the storefront. Every fetch failure and write rejection
// lands here; nothing here is fatal and nothing blocks a retry.
package notice

import (
	"fmt"
	"sync"
	"time"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Notice struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Board keeps the most recent notices in arrival order, oldest first.
type Board struct {
	mu      sync.Mutex
	notices []Notice
	limit   int
}

func NewBoard(limit int) *Board {
	if limit <= 0 {
		limit = 50
	}
	return &Board{limit: limit}
}

func (b *Board) post(level Level, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notices = append(b.notices, Notice{Level: level, Message: message, At: time.Now()})
	if len(b.notices) > b.limit {
		b.notices = b.notices[len(b.notices)-b.limit:]
	}
}

func (b *Board) Infof(format string, args ...any) {
	b.post(LevelInfo, fmt.Sprintf(format, args...))
}

func (b *Board) Errorf(format string, args ...any) {
	b.post(LevelError, fmt.Sprintf(format, args...))
}

// Recent returns a copy of the retained notices.
func (b *Board) Recent() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Notice, len(b.notices))
	copy(out, b.notices)
	return out
}
