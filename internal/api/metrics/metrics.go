// Package metrics defines and registers all custom Prometheus metrics for
// the recruiting API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto at
// package load; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruiting"

// ── Keyword metrics ───────────────────────────────────────────────────────────

// KeywordsResolvedTotal counts keyword resolutions.
// Labels:
//   - category: the keyword category (e.g. "skill")
//   - result: "hit" (existing row returned) or "created" (resolution went
//     through the upsert path)
var KeywordsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "keywords_resolved_total",
		Help:      "Total number of keyword resolutions, by category and result.",
	},
	[]string{"category", "result"},
)

// KeywordsCreatedTotal counts keyword rows created lazily on first use.
var KeywordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "keywords_created_total",
		Help:      "Total number of new keyword rows created, by category.",
	},
	[]string{"category"},
)

// UsageCacheTotal counts keyword-usage cache lookups.
// Label:
//   - result: "hit" or "miss"
var UsageCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "keyword_usage_cache_total",
		Help:      "Total number of keyword usage cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Contractor metrics ────────────────────────────────────────────────────────

// ContractorsCreatedTotal counts contractor records created via the API.
var ContractorsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contractors_created_total",
		Help:      "Total number of contractors created.",
	},
)

// ── Resume metrics ────────────────────────────────────────────────────────────

// ResumesParsedTotal counts resume parse attempts.
// Label:
//   - outcome: "ok", "empty", "extract_failed", or "llm_failed"
var ResumesParsedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resumes_parsed_total",
		Help:      "Total number of resume parse attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── History dispatcher metrics ────────────────────────────────────────────────

// HistoryQueueDepth tracks the number of entries waiting in each dispatcher
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var HistoryQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "history_queue_depth",
		Help:      "Current number of history entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// HistoryWriteErrorsTotal counts timeline entries that failed to persist.
var HistoryWriteErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "history_write_errors_total",
		Help:      "Total number of contractor history entries that failed to persist.",
	},
)
