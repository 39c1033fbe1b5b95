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

import "time"

// Loader timeouts for unit loading batches.
const (
	// LoaderUnitTimeout is the default timeout for a single unit load.
	// Units should respect parent context deadlines when shorter.
	LoaderUnitTimeout = 10 * time.Second

	// LoaderBatchTimeout is the default timeout for a whole load batch.
	LoaderBatchTimeout = 5 * time.Minute
)

// Loader concurrency and rate defaults.
const (
	// LoaderConcurrency is the default number of units loaded in parallel.
	LoaderConcurrency = 4

	// LoaderRateLimit is the default number of unit loads started per second.
	LoaderRateLimit = 50

	// LoaderRateBurst is the default burst allowance for unit load starts.
	LoaderRateBurst = 10
)

// CLI timeouts for command-line operations.
const (
	// CLICommandTimeout is the default timeout for CLI command execution.
	CLICommandTimeout = 5 * time.Minute
)
