// Copyright (c) 2025, The vocab Authors.  All rights reserved.
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

// Package timeutil provides strict ISO 8601 timestamp parsing.
package timeutil

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/mchmarny/vocab/pkg/errors"
)

// ISOLayout is the accepted timestamp layout: date and time with seconds,
// no timezone designator and no fractional seconds.
const ISOLayout = "2006-01-02T15:04:05"

// ErrInvalidTimestamp indicates the input does not match ISOLayout.
// All parse errors returned by this package wrap it.
var ErrInvalidTimestamp = stderrors.New("invalid ISO 8601 timestamp")

// ParseISO parses a timestamp in the strict ISOLayout form. Unlike
// time.Parse with a lenient layout list, any deviation (timezone suffix,
// missing seconds, date only) is an error.
func ParseISO(value string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, value)
	if err != nil {
		return time.Time{}, errors.WrapWithContext(errors.ErrCodeInvalidInput,
			fmt.Sprintf("timestamp %q does not match layout %s", value, ISOLayout),
			ErrInvalidTimestamp, map[string]any{"value": value})
	}
	return t, nil
}

// ParseISOOrZero parses a timestamp and returns the zero time when the
// input is invalid. Callers that must distinguish the miss use ParseISO.
func ParseISOOrZero(value string) time.Time {
	t, err := ParseISO(value)
	if err != nil {
		return time.Time{}
	}
	return t
}
