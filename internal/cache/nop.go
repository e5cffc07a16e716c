// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"time"
)

// Nop is a Cache that never stores anything.
type Nop struct{}

// NewNop returns the disabled cache.
func NewNop() Nop { return Nop{} }

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }

func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }

func (Nop) Delete(context.Context, ...string) error { return nil }

func (Nop) Ping(context.Context) error { return nil }

func (Nop) Close() error { return nil }

func (Nop) Enabled() bool { return false }
