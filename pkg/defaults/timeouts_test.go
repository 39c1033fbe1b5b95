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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"LoaderUnitTimeout", LoaderUnitTimeout, 5 * time.Second, 30 * time.Second},
		{"LoaderBatchTimeout", LoaderBatchTimeout, 1 * time.Minute, 10 * time.Minute},
		{"CLICommandTimeout", CLICommandTimeout, 1 * time.Minute, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestUnitTimeoutLessThanBatch(t *testing.T) {
	// A single unit must not be allowed to consume the whole batch budget.
	if LoaderUnitTimeout >= LoaderBatchTimeout {
		t.Errorf("LoaderUnitTimeout (%v) should be less than LoaderBatchTimeout (%v)",
			LoaderUnitTimeout, LoaderBatchTimeout)
	}
}

func TestLoaderConcurrencyPositive(t *testing.T) {
	if LoaderConcurrency < 1 {
		t.Errorf("LoaderConcurrency (%d) must be at least 1", LoaderConcurrency)
	}
	if LoaderRateLimit < 1 {
		t.Errorf("LoaderRateLimit (%d) must be at least 1", LoaderRateLimit)
	}
	if LoaderRateBurst < 1 {
		t.Errorf("LoaderRateBurst (%d) must be at least 1", LoaderRateBurst)
	}
}
