// Package ai defines the boundary to the external assistant service. The
// tracker's only obligation is to hand it a well-formed context object and
// tolerate a degraded answer; prompt construction and response parsing live
// on the other side of this interface.
package ai

import "context"

// Generator produces assistant text for a prompt given a context object.
// Implementations must not panic; callers treat any error as "the assistant
// had nothing to say" and fall back to static copy.
type Generator interface {
	GenerateText(ctx context.Context, prompt string, contextObject any) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string, contextObject any) (string, error)

func (f GeneratorFunc) GenerateText(ctx context.Context, prompt string, contextObject any) (string, error) {
	return f(ctx, prompt, contextObject)
}

// Fallback is the degraded generator used when no assistant is configured.
// It always answers with its static message and never errors.
type Fallback struct {
	Message string
}

const defaultFallback = "The assistant is not configured. Set up an AI provider to get personalized insights."

func (f Fallback) GenerateText(ctx context.Context, prompt string, contextObject any) (string, error) {
	if f.Message == "" {
		return defaultFallback, nil
	}
	return f.Message, nil
}
