package repositories

import "errors"

// ErrNoRowsUpdated is returned when an update matched no row.
var ErrNoRowsUpdated = errors.New("no rows updated")
