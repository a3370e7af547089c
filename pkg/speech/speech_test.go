package speech

import (
	"context"
	"errors"
	"testing"
)

func TestSessionStopIsIdempotent(t *testing.T) {
	ctx, session := Start(context.Background())

	session.Stop()
	if ctx.Err() == nil {
		t.Fatal("stop must cancel the session context")
	}
	// A second stop must be a harmless no-op.
	session.Stop()
	session.Stop()
}

func TestSessionStopWithoutStart(t *testing.T) {
	// Stop is safe on a session that never ran, and on no session at all.
	var none *Session
	none.Stop()

	idle := &Session{}
	idle.Stop()
	idle.Stop()
}

func TestTranscribeUnsupportedWithoutCommand(t *testing.T) {
	c := &CommandTranscriber{}
	if _, err := c.Transcribe(context.Background(), "he-IL"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("want ErrUnsupported, got %v", err)
	}

	var nc *CommandTranscriber
	if _, err := nc.Transcribe(context.Background(), "he-IL"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("nil transcriber: want ErrUnsupported, got %v", err)
	}
}

func TestTranscribeStoppedSessionReportsCancellation(t *testing.T) {
	ctx, session := Start(context.Background())
	session.Stop()

	c := &CommandTranscriber{Command: "true"}
	if _, err := c.Transcribe(ctx, "he-IL"); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
