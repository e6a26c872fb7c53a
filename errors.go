package itemquery

import "errors"

var (
	// ErrNoItemInfo is returned by New when no item info provider is
	// configured.
	ErrNoItemInfo = errors.New("itemquery: item info provider is required")

	// ErrNoTooltip is returned by New when no tooltip provider is
	// configured.
	ErrNoTooltip = errors.New("itemquery: tooltip provider is required")

	// ErrEmptyQualityScale is returned by New when the quality scale is
	// overridden with an empty label list.
	ErrEmptyQualityScale = errors.New("itemquery: quality scale must have at least one label")
)
