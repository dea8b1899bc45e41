// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import (
	"strings"

	"github.com/pkg/errors"
)

// A Level is the severity of a log record.
// Levels are ordered by rank: the lower the ordinal, the more severe.
type Level int

// The severities, most severe first.
const (
	CriticalLevel Level = iota + 1
	ErrorLevel
	WarningLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// A FilterLevel is a severity threshold used for filtering.
// It covers every Level plus FilterOff, which excludes all records.
type FilterLevel int

// Filtering thresholds. A record passes a threshold t when
// its level's ordinal is at most t's ordinal, so FilterOff
// (ordinal 0) passes nothing and FilterTrace passes everything.
const (
	FilterOff FilterLevel = iota
	FilterCritical
	FilterError
	FilterWarning
	FilterInfo
	FilterDebug
	FilterTrace
)

// ErrInvalidLevelName is returned when parsing an unrecognized
// level or filter-level name.
var ErrInvalidLevelName = errors.New("slog: invalid level name")

// AsOrdinal returns the numeric rank of the level.
func (l Level) AsOrdinal() int { return int(l) }

// AsFilterLevel returns the filtering threshold that admits l and
// everything more severe.
func (l Level) AsFilterLevel() FilterLevel { return FilterLevel(l) }

// String returns the level's name.
func (l Level) String() string {
	switch l {
	case CriticalLevel:
		return "Critical"
	case ErrorLevel:
		return "Error"
	case WarningLevel:
		return "Warning"
	case InfoLevel:
		return "Info"
	case DebugLevel:
		return "Debug"
	case TraceLevel:
		return "Trace"
	}
	return "!BADLEVEL"
}

// ShortString returns a fixed-width (4 character) name for the level,
// convenient for column-aligned output.
func (l Level) ShortString() string {
	switch l {
	case CriticalLevel:
		return "CRIT"
	case ErrorLevel:
		return "ERRO"
	case WarningLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBG"
	case TraceLevel:
		return "TRCE"
	}
	return "!BAD"
}

// LevelFromString parses a level name. Matching is case-insensitive
// and single-letter abbreviations ("C", "E", "W", "I", "D", "T") are
// accepted. Unrecognized input returns ErrInvalidLevelName.
func LevelFromString(s string) (Level, error) {
	for l := CriticalLevel; l <= TraceLevel; l++ {
		if matchLevelName(s, l.String()) {
			return l, nil
		}
	}
	return 0, ErrInvalidLevelName
}

// AsOrdinal returns the numeric rank of the threshold.
// FilterOff's ordinal is below every level's.
func (f FilterLevel) AsOrdinal() int { return int(f) }

// AsLevel returns the least severe level admitted by f.
// It reports false for FilterOff, which admits no level.
func (f FilterLevel) AsLevel() (Level, bool) {
	if f == FilterOff {
		return 0, false
	}
	return Level(f), true
}

// String returns the threshold's name.
func (f FilterLevel) String() string {
	if f == FilterOff {
		return "Off"
	}
	return Level(f).String()
}

// FilterLevelFromString parses a filter-level name. It accepts
// everything LevelFromString accepts, plus "Off" and the abbreviation
// "O". Unrecognized input returns ErrInvalidLevelName.
func FilterLevelFromString(s string) (FilterLevel, error) {
	if matchLevelName(s, "Off") {
		return FilterOff, nil
	}
	l, err := LevelFromString(s)
	if err != nil {
		return 0, err
	}
	return l.AsFilterLevel(), nil
}

// matchLevelName reports whether s names the level called name,
// ignoring case and accepting the single-letter abbreviation.
func matchLevelName(s, name string) bool {
	if strings.EqualFold(s, name) {
		return true
	}
	return len(s) == 1 && strings.EqualFold(s, name[:1])
}
