package dataset

import (
	"errors"

	"github.com/vendordesk/vendordesk/app/models"
)

var (
	// ErrNotFound signals an update, delete, or lookup on an unknown id.
	ErrNotFound = errors.New("record not found")

	// ErrValidation marks rejected writes; re-exported so store callers do
	// not need to import the models package for error branching.
	ErrValidation = models.ErrValidation

	// ErrHasDependents signals a vendor delete that was restricted because
	// contracts or projects still reference the vendor.
	ErrHasDependents = errors.New("vendor has dependent records")
)
