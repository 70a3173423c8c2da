package inventory

import "errors"

var (
	ErrInventoryMissing = errors.New("inventory: document not found")
	ErrInventoryInvalid = errors.New("inventory: document is invalid")
	ErrNoRecords        = errors.New("inventory: export requires at least one record")
)
