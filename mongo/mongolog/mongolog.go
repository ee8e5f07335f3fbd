// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package mongolog provides leveled, component-scoped logging for the
// driver. Logging is off by default and never affects control flow.
package mongolog

// Logger is the destination for log messages. Implementations must be safe
// for concurrent use.
type Logger interface {
	Trace(message string, args ...Field)
	Debug(message string, args ...Field)
	Info(message string, args ...Field)
	Notice(message string, args ...Field)
	Warning(message string, args ...Field)
	Error(message string, args ...Field)
}

// MongoLogger manages the mongo log messages sent to the logger
type MongoLogger struct {
	logger            Logger
	maxDocumentLength int

	commandLevel   Level
	transportLevel Level
}

// NewMongoLogger creates a new MongoLogger to use with a mongo.Collection.
// Log level defaults to Off for all components.
func NewMongoLogger(opts ...*Options) (*MongoLogger, error) {
	mlo := MergeOptions(opts...)

	if mlo.Logger == nil {
		logger, err := newLogrusLogger(mlo.OutputFile)
		if err != nil {
			return nil, err
		}
		mlo.Logger = logger
	}

	ml := MongoLogger{
		logger:            mlo.Logger,
		maxDocumentLength: 1000,

		commandLevel:   Off,
		transportLevel: Off,
	}

	if mlo.MaxDocumentLength != nil {
		ml.maxDocumentLength = *mlo.MaxDocumentLength
	}
	if mlo.CommandLevel != nil {
		ml.commandLevel = *mlo.CommandLevel
	}
	if mlo.TransportLevel != nil {
		ml.transportLevel = *mlo.TransportLevel
	}

	return &ml, nil
}

// Log logs a message on logger for component if it passes the log level. Ignores invalid components
// and log levels.
func (ml *MongoLogger) Log(comp Component, level Level, message string, args ...Field) {
	var loggerLevel Level
	switch comp {
	case Command:
		loggerLevel = ml.commandLevel
	case Transport:
		loggerLevel = ml.transportLevel
	}
	if !loggerLevel.Includes(level) {
		return
	}

	switch level {
	case Trace:
		ml.logger.Trace(message, args...)
	case Debug:
		ml.logger.Debug(message, args...)
	case Info:
		ml.logger.Info(message, args...)
	case Notice:
		ml.logger.Notice(message, args...)
	case Warning:
		ml.logger.Warning(message, args...)
	case Error:
		ml.logger.Error(message, args...)
	}
}

// TruncateDocument shortens the given string to the configured maximum
// document length. A maximum of 0 means unlimited.
func (ml *MongoLogger) TruncateDocument(doc string) string {
	if ml.maxDocumentLength > 0 && len(doc) > ml.maxDocumentLength {
		return doc[:ml.maxDocumentLength]
	}
	return doc
}

// Component indicates the component being logged on.
type Component uint8

// Component constants
const (
	_ Component = iota
	Command
	Transport
)

// String returns the string representation of the component.
func (comp Component) String() string {
	switch comp {
	case Command:
		return "Command"
	case Transport:
		return "Transport"
	default:
		return "unknown"
	}
}
