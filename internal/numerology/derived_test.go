package numerology

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Mulank", func() {
	It("should reduce the day alone", func() {
		Expect(Mulank(22)).To(Equal(4))
		Expect(Mulank(29)).To(Equal(2))
		Expect(Mulank(9)).To(Equal(9))
		Expect(Mulank(18)).To(Equal(9))
	})

	It("should reject a negative day", func() {
		_, err := Mulank(-1)
		Expect(err).To(MatchError(ErrInvalidDigitInput))
	})
})

var _ = Describe("Bhagyank", func() {
	It("should reduce every digit of the date", func() {
		// 2+2+1+0+1+9+9+1 = 25 -> 7
		Expect(Bhagyank("22-10-1991")).To(Equal(7))
	})

	It("should be unaffected by leading zeros", func() {
		withZeros, err := Bhagyank("01-01-2000")
		Expect(err).NotTo(HaveOccurred())
		plain, err := Bhagyank("1-1-2000")
		Expect(err).NotTo(HaveOccurred())
		Expect(withZeros).To(Equal(plain))
		Expect(withZeros).To(Equal(4))
	})

	It("should reject an empty date", func() {
		_, err := Bhagyank("")
		Expect(err).To(MatchError(ErrInvalidDigitInput))
	})
})

var _ = Describe("Kua", func() {
	It("should compute the male regression case", func() {
		// yearSum(1991) = 20 -> 2; (11 - 2) mod 9 = 0 -> 9
		Expect(Kua(1991, Male)).To(Equal(9))
	})

	It("should compute the female regression case", func() {
		// (2 + 4) mod 9 = 6
		Expect(Kua(1991, Female)).To(Equal(6))
	})

	DescribeTable("should stay in 1..9 for every year sum",
		func(year, male, female int) {
			Expect(Kua(year, Male)).To(Equal(male))
			Expect(Kua(year, Female)).To(Equal(female))
		},
		Entry("yearSum 1", 1000, 1, 5),
		Entry("yearSum 2", 2000, 9, 6),
		Entry("yearSum 3", 2001, 8, 7),
		Entry("yearSum 5", 1985, 6, 9),
		Entry("yearSum 6", 2004, 5, 1),
		Entry("yearSum 9", 1989, 2, 4),
	)

	It("should reject an unsupported gender", func() {
		_, err := Kua(1991, Gender("other"))
		Expect(err).To(MatchError(ErrInvalidGender))
	})
})

var _ = Describe("Derive", func() {
	It("should compute all three values", func() {
		b, err := ParseBirthDate("22-10-1991")
		Expect(err).NotTo(HaveOccurred())

		values, err := Derive(b, Male)
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal(DerivedValues{Mulank: 4, Bhagyank: 7, Kua: 9}))

		values, err = Derive(b, Female)
		Expect(err).NotTo(HaveOccurred())
		Expect(values.Kua).To(Equal(6))
	})

	It("should surface the gender error", func() {
		b, err := ParseBirthDate("22-10-1991")
		Expect(err).NotTo(HaveOccurred())
		_, err = Derive(b, Gender(""))
		Expect(err).To(MatchError(ErrInvalidGender))
	})
})
