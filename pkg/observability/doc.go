/*
Package observability turns host lifecycle events into structured log lines and
Prometheus metrics.

Both are exposed as host.LifecycleHooks so they can be combined with
host.ChainHooks and handed to host.WithLifecycleHooks.
*/
package observability
