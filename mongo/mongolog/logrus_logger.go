// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongolog

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// logrusLogger adapts a logrus.Logger to the Logger interface. Level
// filtering happens in MongoLogger, so the logrus instance is kept wide
// open. Notice maps to logrus's info level, which has no notice equivalent.
type logrusLogger struct {
	logger *logrus.Logger
}

var _ Logger = (*logrusLogger)(nil)

// NewLogrusLogger returns a Logger that forwards messages to the given
// logrus logger.
func NewLogrusLogger(logger *logrus.Logger) Logger {
	return &logrusLogger{logger: logger}
}

// newLogrusLogger builds the default sink. It writes to stderr unless an
// output file is configured; "stdout" and "stderr" are recognized as the
// standard streams.
func newLogrusLogger(outputFile *string) (Logger, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.TraceLevel)
	logger.SetOutput(os.Stderr)

	if outputFile != nil {
		switch strings.ToLower(*outputFile) {
		case "stderr":
		case "stdout":
			logger.SetOutput(os.Stdout)
		default:
			f, err := os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return nil, fmt.Errorf("error opening logging output file: %v", err)
			}
			logger.SetOutput(f)
		}
	}

	return &logrusLogger{logger: logger}, nil
}

func (ll *logrusLogger) entry(args []Field) *logrus.Entry {
	fields := make(logrus.Fields, len(args))
	for _, f := range args {
		fields[f.Key] = f.Value()
	}
	return ll.logger.WithFields(fields)
}

// Trace logs a message at trace level
func (ll *logrusLogger) Trace(message string, args ...Field) {
	ll.entry(args).Trace(message)
}

// Debug logs a message at debug level
func (ll *logrusLogger) Debug(message string, args ...Field) {
	ll.entry(args).Debug(message)
}

// Info logs a message at info level
func (ll *logrusLogger) Info(message string, args ...Field) {
	ll.entry(args).Info(message)
}

// Notice logs a message at notice level
func (ll *logrusLogger) Notice(message string, args ...Field) {
	ll.entry(args).Info(message)
}

// Warning logs a message at warning level
func (ll *logrusLogger) Warning(message string, args ...Field) {
	ll.entry(args).Warn(message)
}

// Error logs a message at error level
func (ll *logrusLogger) Error(message string, args ...Field) {
	ll.entry(args).Error(message)
}
