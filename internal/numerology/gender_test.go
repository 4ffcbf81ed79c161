package numerology

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseGender", func() {
	Context("with recognised values", func() {
		It("should treat case variants of male as equivalent", func() {
			for _, in := range []string{"MALE", "Male", "male", "mAlE"} {
				Expect(ParseGender(in)).To(Equal(Male), "input %q", in)
			}
		})

		It("should treat case variants of female as equivalent", func() {
			for _, in := range []string{"FEMALE", "Female", "female"} {
				Expect(ParseGender(in)).To(Equal(Female), "input %q", in)
			}
		})
	})

	Context("with unrecognised values", func() {
		It("should reject other", func() {
			_, err := ParseGender("other")
			Expect(err).To(MatchError(ErrInvalidGender))
		})

		It("should reject an empty string", func() {
			_, err := ParseGender("")
			Expect(err).To(MatchError(ErrInvalidGender))
		})

		It("should reject abbreviations and padded values", func() {
			for _, in := range []string{"m", "f", " male", "male "} {
				_, err := ParseGender(in)
				Expect(err).To(MatchError(ErrInvalidGender), "input %q", in)
			}
		})
	})
})

var _ = Describe("Gender", func() {
	It("should report validity", func() {
		Expect(Male.Valid()).To(BeTrue())
		Expect(Female.Valid()).To(BeTrue())
		Expect(Gender("other").Valid()).To(BeFalse())
	})

	It("should list genders in a stable order", func() {
		Expect(Genders()).To(Equal([]Gender{Male, Female}))
	})
})
