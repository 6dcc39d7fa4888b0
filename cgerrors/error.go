/*
 Chunkgen, an orchestrator for automated Minecraft world chunk generation.
 Copyright (C) 2026 Chunkgen Authors

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package cgerrors defines the error kinds the chunk-generation core can
// surface to a caller, per spec.md section 7.
package cgerrors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error categories a caller may want to branch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindVersionUnknown
	KindServerAssetMissing
	KindRuntimeUnavailable
	KindNetworkFetch
	KindFilesystemIO
	KindPathConflict
	KindProcessSpawn
	KindProcessPipeLost
	KindBotLoginFailed
	KindDeserialisation
	KindOutOfBounds
)

func (k Kind) String() string {
	switch k {
	case KindVersionUnknown:
		return "VersionUnknown"
	case KindServerAssetMissing:
		return "ServerAssetMissing"
	case KindRuntimeUnavailable:
		return "RuntimeUnavailable"
	case KindNetworkFetch:
		return "NetworkFetch"
	case KindFilesystemIO:
		return "FilesystemIO"
	case KindPathConflict:
		return "PathConflict"
	case KindProcessSpawn:
		return "ProcessSpawn"
	case KindProcessPipeLost:
		return "ProcessPipeLost"
	case KindBotLoginFailed:
		return "BotLoginFailed"
	case KindDeserialisation:
		return "DeserialisationError"
	case KindOutOfBounds:
		return "OutOfBounds"
	default:
		return "Unknown"
	}
}

// Error is the concrete error value produced by New. Message is a short,
// human-readable summary; Detail carries the arbitrary key/value context
// (url, path, attempts, ...) spec.md section 7 attaches to each kind.
type Error struct {
	Kind    Kind
	Message string
	Detail  map[string]any
	Wrapped error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New builds an *Error from a variadic arg list, type-switching each
// argument into the right field. Unrecognised argument types are ignored.
func New(args ...any) *Error {
	e := &Error{Detail: map[string]any{}}
	for _, arg := range args {
		switch v := arg.(type) {
		case Kind:
			e.Kind = v
		case string:
			e.Message = v
		case error:
			e.Wrapped = v
		case map[string]any:
			for k, val := range v {
				e.Detail[k] = val
			}
		default:
			continue
		}
	}
	return e
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
