package itemquery

import (
	"github.com/hupe1980/itemquery/item"
	"github.com/hupe1980/itemquery/setdb"
)

type options struct {
	logger       *Logger
	info         item.InfoProvider
	tooltip      item.TooltipProvider
	sets         setdb.Provider
	qualityScale []string
}

// Option configures engine construction.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithItemInfo sets the item info provider. Required.
func WithItemInfo(p item.InfoProvider) Option {
	return func(o *options) {
		o.info = p
	}
}

// WithTooltip sets the tooltip provider. Required.
func WithTooltip(p item.TooltipProvider) Option {
	return func(o *options) {
		o.tooltip = p
	}
}

// WithSetProvider sets the set-membership backend. Defaults to an empty
// in-memory backend, which makes every set search a no-match.
func WithSetProvider(p setdb.Provider) Option {
	return func(o *options) {
		o.sets = p
	}
}

// WithQualityScale overrides the ordered quality-tier labels. Index
// positions are what quality comparisons operate on, so order matters.
func WithQualityScale(labels []string) Option {
	return func(o *options) {
		o.qualityScale = labels
	}
}
