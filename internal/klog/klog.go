// Package klog provides rvctl's structured logging output. It has nothing
// to do with the target image -- the freestanding kernel under
// cmd/kernel has no logger beyond console.Printf/console.Panic, which
// can't afford allocation or reflection. This package only runs on the
// host, as part of rvctl.
package klog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// Default returns the default logger. Call once during rvctl startup
	// and pass the result down rather than relying on slog's own global.
	Default = func() *Logger { return NewFormattedLogger(os.Stderr) }

	// Level is the runtime-adjustable log level shared by every Handler.
	// rvctl never changes it, so it stays at its zero value, slog.LevelInfo.
	Level = &slog.LevelVar{}
)

type (
	Attr   = slog.Attr
	Logger = slog.Logger
)

const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// NewFormattedLogger returns a logger writing fixed-width "KEY : value"
// records to out.
func NewFormattedLogger(out io.Writer) *Logger {
	return slog.New(NewHandler(out))
}

// Handler implements slog.Handler, rendering each record as one block of
// right-aligned "KEY : value" lines -- this project's one formatted-log
// style, used everywhere rvctl logs (build, boot, run, demo).
type Handler struct {
	mut   *sync.Mutex
	out   io.Writer
	opts  *slog.HandlerOptions
	group string
	attrs []Attr
}

var options = &slog.HandlerOptions{
	AddSource: true,
	Level:     Level,
}

// NewHandler creates a Handler writing to out.
func NewHandler(out io.Writer) *Handler {
	return &Handler{out: out, mut: new(sync.Mutex), opts: options}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	buf := bytes.NewBuffer(make([]byte, 0, 512))

	if !rec.Time.IsZero() {
		fmt.Fprintf(buf, "%9s : %s\n", "TIME", rec.Time.Format(time.RFC3339))
	}
	fmt.Fprintf(buf, "%9s : %s\n", "LEVEL", rec.Level.String())

	if h.opts.AddSource && rec.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{rec.PC})
		f, _ := frames.Next()
		_, file := path.Split(f.File)
		fmt.Fprintf(buf, "%9s : %s:%d\n", "SOURCE", file, f.Line)
	}

	fmt.Fprintf(buf, "%9s : %s\n", "MSG", rec.Message)

	for _, a := range h.attrs {
		h.appendAttr(buf, a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		h.appendAttr(buf, a)
		return true
	})

	fmt.Fprintln(buf)

	h.mut.Lock()
	defer h.mut.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) appendAttr(out io.Writer, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := strings.ToUpper(attr.Key)
	if h.group != "" {
		key = strings.ToUpper(h.group) + "." + key
	}
	fmt.Fprintf(out, "%9s : %v\n", key, attr.Value.Any())
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{mut: h.mut, out: h.out, opts: h.opts, attrs: h.attrs, group: name}
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{mut: h.mut, out: h.out, opts: h.opts, group: h.group, attrs: merged}
}
