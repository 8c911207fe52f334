package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Implementations
// translate their driver's not-found condition to this sentinel so the
// service layer never depends on gorm.
var ErrNotFound = errors.New("record not found")
