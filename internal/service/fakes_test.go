package service

import "github.com/jackc/pgx/v5"

// Fakes in this package surface missing records the way the real
// repositories do, via pgx.ErrNoRows.
var errNoRows = pgx.ErrNoRows
