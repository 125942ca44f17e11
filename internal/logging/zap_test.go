package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newTestZap(t *testing.T) (*ZapLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(&buf), zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), &buf
}

func TestZapLogger_LevelsAndFields(t *testing.T) {
	log, buf := newTestZap(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	want := []struct{ level, msg, key string }{
		{"debug", "dbg", "a"},
		{"info", "inf", "b"},
		{"warn", "wrn", "c"},
		{"error", "err", "d"},
	}
	for i, w := range want {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[i]), &m))
		assert.Equal(t, w.level, m["level"])
		assert.Equal(t, w.msg, m["msg"])
		assert.Contains(t, m, w.key)
	}
}

func TestZapLogger_With(t *testing.T) {
	log, buf := newTestZap(t)

	log.With("request_id", "abc").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"abc"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", `"msg":"hi"`},
		{"text", "msg=hi"},
		{"zap", `"msg":"hi"`},
		{"", `"msg":"hi"`},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(tc.format, "info", &buf)
			require.NoError(t, err)

			l.Debug(context.Background(), "hidden")
			l.Info(context.Background(), "hi")

			assert.Contains(t, buf.String(), tc.want)
			assert.NotContains(t, buf.String(), "hidden")
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New("xml", "info", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("json", "loud", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("text", "debug", &buf)
	require.NoError(t, err)

	l.Debug(context.Background(), "visible")
	assert.Contains(t, buf.String(), "level=DEBUG")
}
