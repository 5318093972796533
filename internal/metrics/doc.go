// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package metrics provides Prometheus instrumentation for the search and
autocomplete API.

# Metrics Endpoint

Metrics are exposed at /metrics in Prometheus text format.

# Available Metrics

  - query_requests_total{endpoint,status}: completed API requests (counter)
  - query_request_duration_seconds{endpoint}: API request latency (histogram)
  - query_active_requests: in-flight API requests (gauge)
  - source_task_duration_seconds{source,outcome}: orchestrator source task
    duration (histogram)
  - source_task_outcome_total{source,outcome}: orchestrator source task
    terminal outcomes (counter); outcome is one of done, timed_out,
    cancelled, failed
  - circuit_breaker_state{source}: brokered provider breaker state (gauge);
    0=closed, 1=half_open, 2=open
  - circuit_breaker_transitions_total{source,from,to}: breaker state
    changes (counter)
  - index_query_duration_seconds{source}: RediSearch FT.SEARCH call
    duration (histogram)

# Usage

	metrics.RecordAPIRequest(r.Method, endpoint, status, duration)
	metrics.TrackActiveRequest(true)
	defer metrics.TrackActiveRequest(false)
	metrics.RecordSourceTask(string(source), "done", elapsed)
	metrics.RecordIndexQuery(string(source), elapsed)
*/
package metrics
