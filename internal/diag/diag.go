// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package diag records accept and reject decisions made for candidate nodes.
package diag

import (
	"context"
	"log/slog"

	"go.uber.org/zap"

	"fillmore-labs.com/ngprovide/internal/astutil"
	"fillmore-labs.com/ngprovide/jsast"
)

// Logger is notified about candidate nodes.
type Logger interface {
	// AcceptedNode is called for a node that will be transformed.
	AcceptedNode(node jsast.Node)

	// RejectedNode is called for a node that is not transformed, with a human-readable reason.
	RejectedNode(reason string, node jsast.Node)
}

// Silent is a [Logger] that discards everything.
var Silent Logger = silent{}

type silent struct{}

func (silent) AcceptedNode(jsast.Node)         {}
func (silent) RejectedNode(string, jsast.Node) {}

// NewSlog returns a [Logger] writing debug records to l.
func NewSlog(l *slog.Logger) Logger {
	if l == nil {
		return Silent
	}

	return slogLogger{l}
}

type slogLogger struct{ l *slog.Logger }

func (s slogLogger) AcceptedNode(node jsast.Node) {
	s.l.LogAttrs(context.Background(), slog.LevelDebug, "accepted node", nodeAttrs(node)...)
}

func (s slogLogger) RejectedNode(reason string, node jsast.Node) {
	s.l.LogAttrs(context.Background(), slog.LevelDebug, "rejected node",
		append(nodeAttrs(node), slog.String("reason", reason))...)
}

func nodeAttrs(node jsast.Node) []slog.Attr {
	return []slog.Attr{
		slog.String("kind", astutil.Kind(node)),
		slog.String("name", astutil.Name(node)),
		slog.Int("line", astutil.Line(node)),
	}
}

// NewZap returns a [Logger] writing debug entries to l.
func NewZap(l *zap.Logger) Logger {
	if l == nil {
		return Silent
	}

	return zapLogger{l}
}

type zapLogger struct{ l *zap.Logger }

func (z zapLogger) AcceptedNode(node jsast.Node) {
	z.l.Debug("accepted node", nodeFields(node)...)
}

func (z zapLogger) RejectedNode(reason string, node jsast.Node) {
	z.l.Debug("rejected node", append(nodeFields(node), zap.String("reason", reason))...)
}

func nodeFields(node jsast.Node) []zap.Field {
	return []zap.Field{
		zap.String("kind", astutil.Kind(node)),
		zap.String("name", astutil.Name(node)),
		zap.Int("line", astutil.Line(node)),
	}
}
