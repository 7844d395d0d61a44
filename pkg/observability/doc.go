/*
Package observability provides Prometheus instrumentation for the skyplan
planning core.

The core itself never requires metrics; callers that want visibility into
heuristic-cache behavior register CacheMetrics against their own registry
and hand them to the cache.
*/
package observability
