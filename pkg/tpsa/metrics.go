// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package tpsa

import "github.com/prometheus/client_golang/prometheus"

var (
	algebraLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tpsa",
		Name:      "algebra_lookups_total",
		Help:      "Number of algebra lookups, labelled by whether they hit or missed the cache.",
	}, []string{"result"})

	algebraBuildSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tpsa",
		Name:      "algebra_build_seconds",
		Help:      "Time taken to build the basis and multiplication table of an algebra.",
		Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
	})

	algebrasCached = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tpsa",
		Name:      "algebras_cached",
		Help:      "Number of distinct algebras built so far.",
	})
)

// RegisterMetrics registers the algebra cache metrics with a given registry.
// Metrics are always collected, regardless of whether they are registered.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{algebraLookups, algebraBuildSeconds, algebrasCached} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	//
	return nil
}
