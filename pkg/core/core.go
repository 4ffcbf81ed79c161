package core

import (
	"context"

	"github.com/numerology-dev/loshu-grid/api/v1alpha1"
	"github.com/numerology-dev/loshu-grid/internal/engines/pipeline"
	"github.com/numerology-dev/loshu-grid/internal/numerology"
)

// Sentinel errors returned by Compute.
var (
	ErrInvalidDateFormat = numerology.ErrInvalidDateFormat
	ErrInvalidGender     = numerology.ErrInvalidGender
	ErrInvalidDigitInput = numerology.ErrInvalidDigitInput
)

// Compute returns the reading for a DD-MM-YYYY date and a gender of "male"
// or "female" (any case). The returned document carries no name.
func Compute(ctx context.Context, dob, gender string) (*v1alpha1.LoShuReading, error) {
	return ComputeNamed(ctx, "", dob, gender)
}

// ComputeNamed is Compute with a name recorded on the document.
func ComputeNamed(ctx context.Context, name, dob, gender string) (*v1alpha1.LoShuReading, error) {
	r, err := pipeline.Compute(ctx, dob, gender)
	if err != nil {
		return nil, err
	}
	return r.ToAPI(name), nil
}
