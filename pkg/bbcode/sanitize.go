package bbcode

import (
	"errors"

	"go.uber.org/zap"
)

// Verdict is the outcome of checking one attribute.
type Verdict int

const (
	Abstain Verdict = iota // no opinion; the static allowlist decides
	Allow
	Reject
)

func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case Reject:
		return "reject"
	default:
		return "abstain"
	}
}

// Sanitizer decides whether generated style attributes are safe to emit.
// It only judges span, div and hr styles and abstains on everything else.
// Apart from its logger it has no state and may be called concurrently.
type Sanitizer struct {
	log *zap.Logger
}

// NewSanitizer creates a sanitizer that reports rejections to log.
func NewSanitizer(log *zap.Logger) *Sanitizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sanitizer{log: log.Named("bbcode-sanitizer")}
}

// Check returns the verdict for one attribute of one element.
func (s *Sanitizer) Check(element, attr, value string) Verdict {
	if attr != "style" {
		return Abstain
	}

	err := ValidateStyle(element, value)
	switch {
	case err == nil:
		return Allow
	case errors.Is(err, ErrNoStyleRule):
		return Abstain
	default:
		s.log.Warn("Dropping style attribute",
			zap.String("element", element),
			zap.String("value", value),
			zap.Error(err))
		return Reject
	}
}

// IsAllowed reports whether Check accepts the attribute outright.
func (s *Sanitizer) IsAllowed(element, attr, value string) bool {
	return s.Check(element, attr, value) == Allow
}
