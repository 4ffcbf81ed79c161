package numerology

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	sentinels := []error{ErrInvalidDateFormat, ErrInvalidGender, ErrInvalidDigitInput}

	It("should keep every error kind distinct through wrapping", func() {
		for i, err := range sentinels {
			wrapped := fmt.Errorf("context: %w", err)
			for j, other := range sentinels {
				if i == j {
					Expect(wrapped).To(MatchError(other))
				} else {
					Expect(wrapped).NotTo(MatchError(other))
				}
			}
		}
	})

	It("should surface each kind from the operation that owns it", func() {
		_, err := ParseBirthDate("22-10-01991")
		Expect(err).To(MatchError(ErrInvalidDateFormat))
		_, err = ParseGender("other")
		Expect(err).To(MatchError(ErrInvalidGender))
		_, err = DigitSum("")
		Expect(err).To(MatchError(ErrInvalidDigitInput))
	})
})
