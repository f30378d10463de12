// Package audit defines the structured audit event model and the sinks and
// asynchronous dispatcher that deliver events. The dispatcher decouples the
// login/register hot path from sink latency; events may be dropped under
// backpressure when configured, and the drop count is observable.
package audit
