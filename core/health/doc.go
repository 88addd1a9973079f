// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: the process is running, no dependency checks
//   - Readiness: every dependency check passes
//   - NoContent: 204 for load balancer pings
//
// Usage:
//
//	eh := response.ErrorHandler(log)
//	r.Get("/health/live", handler.Wrap(health.Liveness, eh))
//	r.Get("/health/ready", handler.Wrap(health.Readiness(log,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	), eh))
//
// Dependency checks follow the func(context.Context) error signature.
package health
