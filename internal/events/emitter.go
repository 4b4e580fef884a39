package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var Emit = func(ctx context.Context, name string, evt ChatEvent) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt ChatEvent) {
		if evt.ConversationID == "" {
			if conversation := ConversationFromContext(ctx); conversation != "" {
				evt.ConversationID = conversation
			}
		}

		if evt.Type == EventSuccess || evt.Type == EventError {
			runtime.EventsEmit(ctx, name, evt)
		}

		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt ChatEvent)) {
	if f == nil {
		Emit = func(context.Context, string, ChatEvent) {}
		return
	}
	Emit = func(ctx context.Context, name string, evt ChatEvent) {
		if evt.ConversationID == "" {
			if conversation := ConversationFromContext(ctx); conversation != "" {
				evt.ConversationID = conversation
			}
		}
		f(ctx, name, evt)
	}
}
