// Copyright (c) 2026 Jeremy Hahn
// Copyright (c) 2026 Automate The Things, LLC
//
// This file is part of go-pqkey.
//
// go-pqkey is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package metrics provides Prometheus instrumentation for key container
// lifecycle events: live containers per family, keypair generations per
// algorithm, and container destructions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all pqkey metrics
	Namespace = "pqkey"

	// Label names
	LabelFamily    = "family"
	LabelAlgorithm = "algorithm"
	LabelStatus    = "status"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	// KeysActive tracks the number of live key containers by family.
	// Incremented at construction, decremented when the last reference
	// is released.
	KeysActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "keys_active",
			Help:      "Number of live key containers by algorithm family",
		},
		[]string{LabelFamily},
	)

	// KeypairGenerations tracks keypair generation attempts by algorithm
	// and outcome.
	KeypairGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "keypair_generations_total",
			Help:      "Total keypair generation attempts by algorithm and status",
		},
		[]string{LabelAlgorithm, LabelStatus},
	)

	// KeyDestructions tracks completed container destruction sequences
	// by family. Each container contributes exactly one destruction.
	KeyDestructions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "key_destructions_total",
			Help:      "Total key container destructions by algorithm family",
		},
		[]string{LabelFamily},
	)
)

// RecordGeneration increments the generation counter for algorithm with
// the status derived from err.
func RecordGeneration(algorithm string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	KeypairGenerations.WithLabelValues(algorithm, status).Inc()
}
