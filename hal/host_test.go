package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func drainTicks(ch <-chan uint64) []uint64 {
	var out []uint64
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}

func TestHostTimeStep(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTimeWithClock(func() time.Time { return now })

	ht.step(1)
	if got := drainTicks(ht.Ticks()); len(got) != 1 || got[0] != 1 {
		t.Fatalf("first step ticks = %v, want [1]", got)
	}

	now = now.Add(2500 * time.Microsecond)
	ht.step(1)
	if got := drainTicks(ht.Ticks()); len(got) != 2 || got[1] != 3 {
		t.Fatalf("after 2.5ms ticks = %v, want [2 3]", got)
	}

	// The leftover 0.5ms carries into the next step.
	now = now.Add(500 * time.Microsecond)
	ht.step(1)
	if got := drainTicks(ht.Ticks()); len(got) != 1 || got[0] != 4 {
		t.Fatalf("after carry ticks = %v, want [4]", got)
	}
}

func TestExpandRGB565(t *testing.T) {
	white := rgb565(0xff, 0xff, 0xff)
	red := rgb565(0xff, 0, 0)
	src := []byte{byte(white), byte(white >> 8), byte(red), byte(red >> 8)}
	dst := make([]byte, 8)

	expandRGB565(dst, src)
	want := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0, 0, 0xff}
	if !bytes.Equal(dst, want) {
		t.Fatalf("expandRGB565 = %v, want %v", dst, want)
	}
}

func TestHostFramebufferClear(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 16 {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.ClearRGB(0xff, 0, 0)
	p := rgb565(0xff, 0, 0)
	for i := 0; i < len(fb.buf); i += 2 {
		if fb.buf[i] != byte(p) || fb.buf[i+1] != byte(p>>8) {
			t.Fatalf("pixel %d not cleared", i/2)
		}
	}
	_ = fb.Present()
	_ = fb.Present()
	if fb.frames() != 2 {
		t.Fatalf("frames = %d, want 2", fb.frames())
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var log bytes.Buffer
	steps := 0
	var gotFB Framebuffer

	err := RunHeadless(context.Background(), Config{Width: 32, Height: 16, Log: &log}, func(h HAL) func() error {
		gotFB = h.Display().Framebuffer()
		return func() error {
			steps++
			return gotFB.Present()
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
	if gotFB.Width() != 32 || gotFB.Height() != 16 {
		t.Fatalf("framebuffer %dx%d", gotFB.Width(), gotFB.Height())
	}
	if !strings.Contains(log.String(), "3 ticks, 3 frames presented") {
		t.Fatalf("log = %q", log.String())
	}
}

func TestRunHeadlessPropagatesStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), Config{Log: &bytes.Buffer{}}, func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, Config{Log: &bytes.Buffer{}}, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestHostDefaults(t *testing.T) {
	h := newHost(Config{Log: &bytes.Buffer{}})
	fb := h.Display().Framebuffer()
	if fb.Width() != 600 || fb.Height() != 600 {
		t.Fatalf("default framebuffer %dx%d", fb.Width(), fb.Height())
	}
	if x, y := h.Input().Pointer().Position(); x != 0 || y != 0 {
		t.Fatalf("pointer at (%d,%d)", x, y)
	}
	h.ptr.set(12, 34)
	if x, y := h.Input().Pointer().Position(); x != 12 || y != 34 {
		t.Fatalf("pointer at (%d,%d), want (12,34)", x, y)
	}
}
