package lti

import "errors"

// Errors returned by filter construction and composition.
var (
	ErrEmptyCoeffs      = errors.New("lti: at least one coefficient required per side")
	ErrCapacity         = errors.New("lti: filter order exceeds fixed capacity")
	ErrZeroLeadingCoeff = errors.New("lti: leading output coefficient must be nonzero")
)
