// Package lookup implements the lookup-and-classify pipeline: input
// normalization, numbering-plan classification, local carrier resolution,
// and assembly of the immutable result record.
package lookup

import "time"

// CarrierResolver resolves a local carrier override for an E.164 number.
// Implemented by *carrier.Resolver.
type CarrierResolver interface {
	Resolve(e164 string) (string, bool)
}

// Pipeline runs the full lookup for raw inputs. It holds no mutable state
// and is safe for concurrent use.
type Pipeline struct {
	defaultRegion string
	locale        string
	resolver      CarrierResolver
	now           func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCarrierResolver installs a local carrier override resolver.
func WithCarrierResolver(r CarrierResolver) Option {
	return func(p *Pipeline) {
		p.resolver = r
	}
}

// WithClock overrides the result timestamp source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a Pipeline. defaultRegion is the ISO region assumed for input
// without a leading "+"; locale selects the language for carrier and
// geocoding names.
func New(defaultRegion, locale string, opts ...Option) *Pipeline {
	p := &Pipeline{
		defaultRegion: defaultRegion,
		locale:        locale,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lookup runs normalize → classify → resolve → assemble for one raw input.
// Returned errors wrap ErrInvalidFormat, ErrUnparseable, or
// ErrOracleUnavailable; only the last is fatal for a batch.
func (p *Pipeline) Lookup(raw string) (Result, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return Result{}, err
	}

	facts, err := Classify(normalized, p.defaultRegion, p.locale)
	if err != nil {
		return Result{}, err
	}

	var local string
	if p.resolver != nil {
		if name, ok := p.resolver.Resolve(facts.E164); ok {
			local = name
		}
	}

	return Assemble(raw, normalized, facts, local, p.now()), nil
}
