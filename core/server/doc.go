// Package server wraps http.Server with env driven configuration and
// graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Run blocks until the context is cancelled, then shuts down within the
// configured timeout and reports nil.
package server
