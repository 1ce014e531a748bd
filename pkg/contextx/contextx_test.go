package contextx_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"gamedeals/pkg/contextx"
)

func TestValues(t *testing.T) {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testCases := []struct {
		name    string
		with    func(context.Context) context.Context
		get     func(context.Context) (any, error)
		want    any
		zero    any
		errText string
	}{
		{
			name: "Trace id",
			with: func(ctx context.Context) context.Context {
				return contextx.WithTraceID(ctx, "cf3k2ljb8o5s73c0aa4g")
			},
			get: func(ctx context.Context) (any, error) {
				return contextx.TraceIDFromContext(ctx)
			},
			want:    contextx.TraceID("cf3k2ljb8o5s73c0aa4g"),
			zero:    contextx.TraceID(""),
			errText: "trace id: no value in context",
		},
		{
			name: "Chat id",
			with: func(ctx context.Context) context.Context {
				return contextx.WithChatID(ctx, 1217838677)
			},
			get: func(ctx context.Context) (any, error) {
				return contextx.ChatIDFromContext(ctx)
			},
			want:    contextx.ChatID(1217838677),
			zero:    contextx.ChatID(0),
			errText: "chat id: no value in context",
		},
		{
			name: "Logger",
			with: func(ctx context.Context) context.Context {
				return contextx.WithLogger(ctx, testLogger)
			},
			get: func(ctx context.Context) (any, error) {
				return contextx.LoggerFromContext(ctx)
			},
			want:    testLogger,
			zero:    (*slog.Logger)(nil),
			errText: "logger: no value in context",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			ctx := context.Background()

			got, err := tc.get(ctx)
			rq.Equal(tc.zero, got)
			rq.ErrorIs(err, contextx.ErrNoValue)
			rq.EqualError(err, tc.errText)

			got, err = tc.get(tc.with(ctx))
			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}

func TestChatIDString(t *testing.T) {
	require.Equal(t, "1217838677", contextx.ChatID(1217838677).String())
}

func TestLoggerFromContextOrDefault(t *testing.T) {
	rq := require.New(t)

	rq.Same(slog.Default(), contextx.LoggerFromContextOrDefault(context.Background()))

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	rq.Same(custom, contextx.LoggerFromContextOrDefault(contextx.WithLogger(context.Background(), custom)))
}
