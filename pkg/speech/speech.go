// Package speech wraps an external speech-to-text capability. The
// capability is a black box: a configured command that prints one
// finalized transcript per session, in the configured language.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"tableflip.dev/sal/pkg/store"
)

// ErrUnsupported reports that no transcription capability is configured
// on this system.
var ErrUnsupported = errors.New("speech: transcription is not available, set speech.command in .sal")

// Transcriber produces one finalized transcript per session.
type Transcriber interface {
	Transcribe(ctx context.Context, lang string) (string, error)
}

// CommandTranscriber runs an external command with the language tag as
// its final argument and reads the transcript from stdout.
type CommandTranscriber struct {
	Command string
	Args    []string
}

// FromConfig builds a transcriber from viper config. The returned
// transcriber reports ErrUnsupported when no command is configured.
func FromConfig() *CommandTranscriber {
	return &CommandTranscriber{Command: store.SpeechCommand()}
}

func (c *CommandTranscriber) Transcribe(ctx context.Context, lang string) (string, error) {
	if c == nil || c.Command == "" {
		return "", ErrUnsupported
	}
	args := append(append([]string{}, c.Args...), lang)
	cmd := exec.CommandContext(ctx, c.Command, args...)
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("speech: %s: %w", c.Command, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Session is one in-flight transcription that can be stopped. Stop is
// idempotent and safe to call whether or not the session ever started.
type Session struct {
	cancel context.CancelFunc
	once   sync.Once
}

// Start begins a session; the returned context governs the transcription.
func Start(parent context.Context) (context.Context, *Session) {
	ctx, cancel := context.WithCancel(parent)
	return ctx, &Session{cancel: cancel}
}

func (s *Session) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}
