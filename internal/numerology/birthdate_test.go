package numerology

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseBirthDate", func() {
	It("should parse a DD-MM-YYYY date", func() {
		b, err := ParseBirthDate("22-10-1991")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Day()).To(Equal(22))
		Expect(b.Month()).To(Equal(10))
		Expect(b.Year()).To(Equal(1991))
		Expect(b.String()).To(Equal("22-10-1991"))
		Expect(b.DigitString()).To(Equal("22101991"))
		Expect(b.Digits()).To(Equal([]int{2, 2, 1, 0, 1, 9, 9, 1}))
		Expect(b.Time()).To(Equal(time.Date(1991, time.October, 22, 0, 0, 0, 0, time.UTC)))
	})

	It("should accept components without leading zeros", func() {
		b, err := ParseBirthDate("1-1-1991")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Day()).To(Equal(1))
		Expect(b.Digits()).To(Equal([]int{1, 1, 1, 9, 9, 1}))
	})

	It("should keep leading zeros as digits", func() {
		b, err := ParseBirthDate("01-02-2000")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Digits()).To(Equal([]int{0, 1, 0, 2, 2, 0, 0, 0}))
	})

	It("should accept a two digit year", func() {
		b, err := ParseBirthDate("22-10-91")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Year()).To(Equal(91))
		Expect(b.Digits()).To(HaveLen(6))
	})

	It("should accept a leap day in a leap year", func() {
		_, err := ParseBirthDate("29-02-2000")
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("should reject malformed dates",
		func(input string) {
			_, err := ParseBirthDate(input)
			Expect(err).To(MatchError(ErrInvalidDateFormat))
		},
		Entry("empty string", ""),
		Entry("year first", "1991-10-22"),
		Entry("missing component", "22-10"),
		Entry("extra component", "22-10-1991-1"),
		Entry("slash separator", "22/10/1991"),
		Entry("non-numeric day", "xx-10-1991"),
		Entry("empty month", "22--1991"),
		Entry("signed component", "+2-10-1991"),
		Entry("month out of range", "22-13-1991"),
		Entry("day zero", "00-10-1991"),
		Entry("february 30", "30-02-1991"),
		Entry("leap day in common year", "29-02-1991"),
		Entry("year zero", "22-10-0"),
		Entry("surrounding whitespace", " 22-10-1991"),
		Entry("padded year", "22-10-01991"),
		Entry("padded day", "022-10-1991"),
		Entry("padded month", "22-010-1991"),
		Entry("five digit year", "22-10-19910"),
	)
})
