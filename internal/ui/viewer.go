package ui

import "htgen/internal/domain"

// Viewer displays scanned listings interactively
type Viewer interface {
	View(listings []*domain.Listing) error
}
