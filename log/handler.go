package log

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// Handler returns a [slog.Handler] that routes records into l.
//
// Records at [slog.LevelError] and above are emitted with [Logger.Error],
// [slog.LevelWarn] with [Logger.Warning], [slog.LevelInfo] with
// [Logger.Info] and anything lower with [Logger.Verbose]. Attributes are
// appended to the message as key=value pairs.
func (l *Logger) Handler() slog.Handler {
	return &bridgeHandler{logger: l}
}

// bridgeHandler is a slog.Handler over a facade Logger.
type bridgeHandler struct {
	logger *Logger
	attrs  []slog.Attr
	groups []string
}

// fromSlogLevel maps a slog level onto the facade severity ordering.
func fromSlogLevel(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelErrors
	case level >= slog.LevelWarn:
		return LevelWarnings
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelVerbose
	}
}

// Enabled gates by the facade level.
func (h *bridgeHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.level.Enables(fromSlogLevel(level))
}

func (h *bridgeHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		writeAttr(&sb, a.Key, a.Value)
	}

	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}

		writeAttr(&sb, key, a.Value)

		return true
	})

	switch fromSlogLevel(r.Level) {
	case LevelErrors:
		h.logger.Error(sb.String())
	case LevelWarnings:
		h.logger.Warning(sb.String())
	case LevelInfo:
		h.logger.Info(sb.String())
	default:
		h.logger.Verbose(sb.String())
	}

	return nil
}

func (h *bridgeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	prefix := strings.Join(h.groups, ".")

	merged := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(merged, h.attrs)

	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}

		merged = append(merged, a)
	}

	return &bridgeHandler{logger: h.logger, attrs: merged, groups: h.groups}
}

func (h *bridgeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &bridgeHandler{
		logger: h.logger,
		attrs:  h.attrs,
		groups: append(h.groups[:len(h.groups):len(h.groups)], name),
	}
}

// writeAttr appends " key=value" to sb, flattening groups into dotted keys.
func writeAttr(sb *strings.Builder, key string, v slog.Value) {
	v = v.Resolve()

	if v.Kind() == slog.KindGroup {
		for _, a := range v.Group() {
			sub := a.Key
			if key != "" {
				sub = key + "." + sub
			}

			writeAttr(sb, sub, a.Value)
		}

		return
	}

	if key == "" {
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')

	s := v.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		s = strconv.Quote(s)
	}

	sb.WriteString(s)
}
