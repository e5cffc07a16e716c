// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const redacted = "******"

// Secret is a string that never prints its value. Use [Secret.Reveal] at the
// point where the plain value is actually needed.
type Secret string

// Reveal returns the plain secret value.
func (s Secret) Reveal() string {
	return string(s)
}

// String implements fmt.Stringer and returns a fixed mask for non-empty
// secrets.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// GoString keeps %#v from leaking the value.
func (s Secret) GoString() string {
	return strconv.Quote(s.String())
}

// MarshalJSON masks the value in JSON output.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON reads the plain value from a config file.
func (s *Secret) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Secret(v)
	return nil
}

// Minutes is a duration configured as a whole number of minutes
// ("480"). Go duration strings ("8h") are accepted as well.
type Minutes time.Duration

// Duration converts m to a [time.Duration].
func (m Minutes) Duration() time.Duration {
	return time.Duration(m)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Minutes) UnmarshalText(text []byte) error {
	d, err := parseUnitDuration(string(text), time.Minute)
	if err != nil {
		return err
	}
	*m = Minutes(d)
	return nil
}

// UnmarshalJSON accepts a JSON number of minutes or a duration string.
func (m *Minutes) UnmarshalJSON(b []byte) error {
	return m.UnmarshalText([]byte(strings.Trim(string(b), `"`)))
}

// Seconds is a duration configured as a whole number of seconds ("60").
// Go duration strings ("1m") are accepted as well.
type Seconds time.Duration

// Duration converts s to a [time.Duration].
func (s Seconds) Duration() time.Duration {
	return time.Duration(s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seconds) UnmarshalText(text []byte) error {
	d, err := parseUnitDuration(string(text), time.Second)
	if err != nil {
		return err
	}
	*s = Seconds(d)
	return nil
}

// UnmarshalJSON accepts a JSON number of seconds or a duration string.
func (s *Seconds) UnmarshalJSON(b []byte) error {
	return s.UnmarshalText([]byte(strings.Trim(string(b), `"`)))
}

func parseUnitDuration(raw string, unit time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(n) * unit, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: expected an integer or a Go duration", raw)
	}
	return d, nil
}
