package ai

import (
	"context"
	"errors"
	"testing"
)

func TestFallback(t *testing.T) {
	ctx := context.Background()

	msg, err := Fallback{}.GenerateText(ctx, "anything", nil)
	if err != nil {
		t.Fatalf("fallback errored: %v", err)
	}
	if msg != defaultFallback {
		t.Fatalf("msg=%q", msg)
	}

	msg, err = Fallback{Message: "offline"}.GenerateText(ctx, "anything", nil)
	if err != nil {
		t.Fatalf("fallback errored: %v", err)
	}
	if msg != "offline" {
		t.Fatalf("msg=%q", msg)
	}
}

func TestGeneratorFunc(t *testing.T) {
	wantErr := errors.New("no provider")
	g := GeneratorFunc(func(ctx context.Context, prompt string, contextObject any) (string, error) {
		return "", wantErr
	})
	if _, err := g.GenerateText(context.Background(), "p", nil); !errors.Is(err, wantErr) {
		t.Fatalf("err=%v", err)
	}
}
