// Package metrics defines and registers the custom Prometheus metrics for
// the employee directory API. It is the single source of truth for metric
// names, labels, and help strings. Registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EmployeeOperationsTotal counts directory operations.
// Labels:
//   - op: "list", "get", "create", "update", "delete"
//   - result: "success", "not_found", or "error"
var EmployeeOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_operations_total",
		Help:      "Total number of employee directory operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// EmployeeOperationDuration measures how long a directory operation takes,
// simulated latency included.
// Label:
//   - op: same values as EmployeeOperationsTotal
var EmployeeOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "employee_operation_duration_seconds",
		Help:      "Duration of employee directory operations end-to-end.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)
