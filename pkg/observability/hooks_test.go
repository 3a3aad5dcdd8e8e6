package observability

import (
	"context"
	"testing"
	"time"
)

type recordingConvertHooks struct {
	extracts   int
	registered int
	sealed     int
}

func (r *recordingConvertHooks) OnExtractStart(context.Context, string, int) { r.extracts++ }
func (r *recordingConvertHooks) OnExtractComplete(context.Context, string, int, time.Duration, error) {
}
func (r *recordingConvertHooks) OnPageRegistered(context.Context, int, float64, float64) {
	r.registered++
}
func (r *recordingConvertHooks) OnSealStart(context.Context, string) {}
func (r *recordingConvertHooks) OnSealComplete(context.Context, string, int, time.Duration, error) {
	r.sealed++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	ctx := context.Background()
	Convert().OnExtractStart(ctx, "doc.pdf", 1)
	Convert().OnPageRegistered(ctx, 1, 720, 1018)
	Convert().OnSealComplete(ctx, "out.docx", 1, time.Second, nil)
	Cache().OnCacheHit(ctx, "render")
}

func TestSetConvertHooks(t *testing.T) {
	defer Reset()

	rec := &recordingConvertHooks{}
	SetConvertHooks(rec)

	ctx := context.Background()
	Convert().OnExtractStart(ctx, "doc.pdf", 1)
	Convert().OnPageRegistered(ctx, 1, 100, 200)
	Convert().OnSealComplete(ctx, "out.docx", 1, time.Millisecond, nil)

	if rec.extracts != 1 || rec.registered != 1 || rec.sealed != 1 {
		t.Errorf("hook counts = %d/%d/%d, want 1/1/1", rec.extracts, rec.registered, rec.sealed)
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingConvertHooks{}
	SetConvertHooks(rec)
	SetConvertHooks(nil)

	Convert().OnExtractStart(context.Background(), "doc.pdf", 1)
	if rec.extracts != 1 {
		t.Error("nil registration should not replace existing hooks")
	}
}
