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

package loader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Unit load metrics
	loaderUnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vocab_loader_units_total",
			Help: "Total number of unit loads by status",
		},
		[]string{"status"},
	)
	loaderUnitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vocab_loader_unit_duration_seconds",
			Help:    "Duration of individual unit loads in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	// Batch metrics
	loaderBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vocab_loader_batches_total",
			Help: "Total number of load batches by status",
		},
		[]string{"status"},
	)
)

const (
	statusSuccess = "success"
	statusError   = "error"
)
