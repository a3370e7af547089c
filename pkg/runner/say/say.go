// Package say provides the runner logic for adding an item by voice. The
// transcription capability is supplied by the host system; when it is
// missing the user gets a clear message instead of a silent failure.
package say

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/sal/pkg/app"
	addrunner "tableflip.dev/sal/pkg/runner/add"
	"tableflip.dev/sal/pkg/speech"
	"tableflip.dev/sal/pkg/store"
)

type Say struct {
	Language string
	Category string

	Transcriber speech.Transcriber
	Service     *app.Service
}

func (n *Say) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not listen, no service")
	}
	t := n.Transcriber
	if t == nil {
		t = speech.FromConfig()
	}
	lang := n.Language
	if lang == "" {
		lang = store.SpeechLanguage()
	}

	sctx, session := speech.Start(ctx)
	defer session.Stop()

	transcript, err := t.Transcribe(sctx, lang)
	if err != nil {
		if errors.Is(err, speech.ErrUnsupported) {
			_, _ = fmt.Fprintln(color.Output, "speech input is not supported on this system")
			return nil
		}
		return err
	}

	qty, name := speech.Parse(transcript, 1)
	add := addrunner.Add{
		Name:     name,
		Quantity: qty,
		Category: n.Category,
		Service:  n.Service,
	}
	return add.Do(ctx)
}
