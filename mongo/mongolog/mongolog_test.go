// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongolog_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/10gen/mongolite/mongo/mongolog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	level   mongolog.Level
	message string
	fields  []mongolog.Field
}

// recordingLogger captures every message it receives.
type recordingLogger struct {
	entries []logEntry
}

func (rl *recordingLogger) record(level mongolog.Level, message string, args []mongolog.Field) {
	rl.entries = append(rl.entries, logEntry{level: level, message: message, fields: args})
}

func (rl *recordingLogger) Trace(message string, args ...mongolog.Field) {
	rl.record(mongolog.Trace, message, args)
}
func (rl *recordingLogger) Debug(message string, args ...mongolog.Field) {
	rl.record(mongolog.Debug, message, args)
}
func (rl *recordingLogger) Info(message string, args ...mongolog.Field) {
	rl.record(mongolog.Info, message, args)
}
func (rl *recordingLogger) Notice(message string, args ...mongolog.Field) {
	rl.record(mongolog.Notice, message, args)
}
func (rl *recordingLogger) Warning(message string, args ...mongolog.Field) {
	rl.record(mongolog.Warning, message, args)
}
func (rl *recordingLogger) Error(message string, args ...mongolog.Field) {
	rl.record(mongolog.Error, message, args)
}

func TestLevelIncludes(t *testing.T) {
	testCases := []struct {
		l     mongolog.Level
		other mongolog.Level
		want  bool
	}{
		{mongolog.Off, mongolog.Error, false},
		{mongolog.Trace, mongolog.Off, false},
		{mongolog.Trace, mongolog.Trace, true},
		{mongolog.Trace, mongolog.Error, true},
		{mongolog.Debug, mongolog.Trace, false},
		{mongolog.Debug, mongolog.Debug, true},
		{mongolog.Debug, mongolog.Warning, true},
		{mongolog.Error, mongolog.Warning, false},
		{mongolog.Error, mongolog.Error, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.l.String()+" includes "+tc.other.String(), func(t *testing.T) {
			got := tc.l.Includes(tc.other)
			assert.Equal(t, tc.want, got, "expected Includes to return %v", tc.want)
		})
	}
}

func TestStringToLevel(t *testing.T) {
	testCases := []struct {
		s       string
		want    mongolog.Level
		wantErr bool
	}{
		{"off", mongolog.Off, false},
		{"trace", mongolog.Trace, false},
		{"DEBUG", mongolog.Debug, false},
		{"Info", mongolog.Info, false},
		{"notice", mongolog.Notice, false},
		{"warning", mongolog.Warning, false},
		{"error", mongolog.Error, false},
		{"verbose", mongolog.Off, true},
		{"", mongolog.Off, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.s, func(t *testing.T) {
			got, err := mongolog.StringToLevel(tc.s)
			if tc.wantErr {
				assert.Error(t, err, "expected an error for %q", tc.s)
				return
			}
			assert.NoError(t, err, "unexpected error for %q", tc.s)
			assert.Equal(t, tc.want, got, "levels do not match")
		})
	}
}

func TestMongoLoggerLog(t *testing.T) {
	t.Run("off by default", func(t *testing.T) {
		rec := &recordingLogger{}
		ml, err := mongolog.NewMongoLogger(mongolog.NewOptions().SetLogger(rec))
		require.NoError(t, err)

		ml.Log(mongolog.Command, mongolog.Debug, "command started")
		ml.Log(mongolog.Transport, mongolog.Error, "submit failed")
		assert.Empty(t, rec.entries, "expected no messages to pass an Off level")
	})

	t.Run("component levels filter independently", func(t *testing.T) {
		rec := &recordingLogger{}
		ml, err := mongolog.NewMongoLogger(mongolog.NewOptions().
			SetLogger(rec).
			SetCommandLevel(mongolog.Debug))
		require.NoError(t, err)

		ml.Log(mongolog.Command, mongolog.Trace, "too detailed")
		ml.Log(mongolog.Command, mongolog.Debug, "command started")
		ml.Log(mongolog.Transport, mongolog.Debug, "submit")

		require.Len(t, rec.entries, 1)
		assert.Equal(t, mongolog.Debug, rec.entries[0].level)
		assert.Equal(t, "command started", rec.entries[0].message)
	})

	t.Run("fields pass through", func(t *testing.T) {
		rec := &recordingLogger{}
		ml, err := mongolog.NewMongoLogger(mongolog.NewOptions().
			SetLogger(rec).
			SetLevel(mongolog.Trace))
		require.NoError(t, err)

		ml.Log(mongolog.Command, mongolog.Debug, "command started",
			mongolog.String("commandName", "insert"),
			mongolog.Int64("requestId", 7),
		)

		require.Len(t, rec.entries, 1)
		fields := rec.entries[0].fields
		require.Len(t, fields, 2)
		assert.Equal(t, "commandName", fields[0].Key)
		assert.Equal(t, "insert", fields[0].Value())
		assert.Equal(t, "requestId", fields[1].Key)
		assert.Equal(t, int64(7), fields[1].Value())
	})

	t.Run("invalid component is ignored", func(t *testing.T) {
		rec := &recordingLogger{}
		ml, err := mongolog.NewMongoLogger(mongolog.NewOptions().
			SetLogger(rec).
			SetLevel(mongolog.Trace))
		require.NoError(t, err)

		ml.Log(mongolog.Component(42), mongolog.Error, "nobody home")
		assert.Empty(t, rec.entries)
	})
}

func TestTruncateDocument(t *testing.T) {
	t.Run("longer documents are truncated", func(t *testing.T) {
		rec := &recordingLogger{}
		ml, err := mongolog.NewMongoLogger(mongolog.NewOptions().
			SetLogger(rec).
			SetMaxDocumentLength(5))
		require.NoError(t, err)

		assert.Equal(t, `{"a":`, ml.TruncateDocument(`{"a": {"$numberInt":"1"}}`))
		assert.Equal(t, `{}`, ml.TruncateDocument(`{}`))
	})

	t.Run("unlimited", func(t *testing.T) {
		rec := &recordingLogger{}
		ml, err := mongolog.NewMongoLogger(mongolog.NewOptions().
			SetLogger(rec).
			SetMaxDocumentLengthUnlimited())
		require.NoError(t, err)

		long := bytes.Repeat([]byte("x"), 5000)
		assert.Equal(t, string(long), ml.TruncateDocument(string(long)))
	})
}

func TestFieldValue(t *testing.T) {
	loc := time.UTC
	now := time.Unix(1571265600, 0).In(loc)

	testCases := []struct {
		name  string
		field mongolog.Field
		want  interface{}
	}{
		{"bool", mongolog.Bool("ok", true), true},
		{"float64", mongolog.Float64("ratio", 0.5), 0.5},
		{"int", mongolog.Int("count", 42), int64(42)},
		{"int64", mongolog.Int64("requestId", int64(12)), int64(12)},
		{"int32", mongolog.Int32("n", int32(3)), int32(3)},
		{"string", mongolog.String("commandName", "update"), "update"},
		{"stringer", mongolog.Stringer("level", mongolog.Debug), "debug"},
		{"duration", mongolog.Duration("elapsed", 250 * time.Millisecond), 250 * time.Millisecond},
		{"time", mongolog.Time("at", now), now},
		{"reflect", mongolog.Reflect("payload", []int{1, 2}), []int{1, 2}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.field.Value(), "field values do not match")
		})
	}
}

func TestLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.TraceLevel)

	ml, err := mongolog.NewMongoLogger(mongolog.NewOptions().
		SetLogger(mongolog.NewLogrusLogger(logger)).
		SetCommandLevel(mongolog.Debug))
	require.NoError(t, err)

	ml.Log(mongolog.Command, mongolog.Debug, "command started",
		mongolog.String("commandName", "insert"),
		mongolog.Int64("requestId", 3),
	)

	out := buf.String()
	assert.Contains(t, out, "command started")
	assert.Contains(t, out, "commandName=insert")
	assert.Contains(t, out, "requestId=3")
}
