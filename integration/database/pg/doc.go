// Package pg manages the PostgreSQL connection pool, goose migrations and
// health checks.
//
// The pool is a pgxpool.Pool. Repositories work on *sql.DB obtained through
// OpenDB, which shares the pool via the pgx stdlib adapter, so goose and
// database/sql based code run against the same connections.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	db := pg.OpenDB(pool)
//	if err := pg.Migrate(ctx, db, migrations.FS, cfg, log); err != nil {
//		return err
//	}
//
// Transactions are propagated through the context with WithTx; repositories
// call Conn to pick the transaction when present. InTx wraps the begin,
// commit and rollback dance.
//
// IsNotFoundError, IsDuplicateKeyError, IsForeignKeyViolationError and
// IsTxClosedError classify driver errors for the layers above.
package pg
