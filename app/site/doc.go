// Package site assembles the CMS application: configuration, logger,
// Postgres pool, Redis cache, the admin and public features, and the HTTP
// server.
//
// Usage:
//
//	var cfg site.Config
//	config.MustLoad(&cfg)
//
//	app, err := site.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	return app.Run(ctx)
package site
