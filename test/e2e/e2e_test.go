package e2e

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"sigs.k8s.io/yaml"

	"github.com/numerology-dev/loshu-grid/api/v1alpha1"
)

var _ = Describe("loshu grid", func() {
	It("should render the regression reading as text", func() {
		By("running grid with colour disabled")
		res := runLoshu("", "grid", "22-10-1991", "male", "--color", "never")
		Expect(res.Err).NotTo(HaveOccurred())

		Expect(res.Stdout).To(ContainSubstring("Date of Birth: 22-10-1991 (male)"))
		Expect(res.Stdout).To(ContainSubstring("Mulank: 4"))
		Expect(res.Stdout).To(ContainSubstring("Bhagyank: 7"))
		Expect(res.Stdout).To(ContainSubstring("Kua Number: 9"))
		Expect(res.Stdout).To(ContainSubstring("Missing Numbers: 3, 5, 6, 8"))
		Expect(res.Stdout).To(ContainSubstring("1: 3 time(s)"))
		Expect(res.Stdout).NotTo(ContainSubstring("\x1b["))
	})

	It("should colour text output when asked", func() {
		res := runLoshu("", "grid", "22-10-1991", "male", "--color", "always")
		Expect(res.Err).NotTo(HaveOccurred())
		Expect(res.Stdout).To(ContainSubstring("\x1b["))
	})

	DescribeTable("Kua by gender",
		func(dob, gender string, kua int) {
			res := runLoshu("", "grid", dob, gender, "-o", "json")
			Expect(res.Err).NotTo(HaveOccurred())

			var reading v1alpha1.LoShuReading
			Expect(json.Unmarshal([]byte(res.Stdout), &reading)).To(Succeed())
			Expect(reading.Status.Kua).To(Equal(kua))
			Expect(reading.Status.ComputedAt.Time.Equal(suiteNow)).To(BeTrue())
		},
		Entry("male 1991", "22-10-1991", "male", 9),
		Entry("female 1991", "22-10-1991", "female", 6),
		Entry("male 2000", "01-01-2000", "Male", 9),
		Entry("female 2000", "01-01-2000", "female", 6),
	)

	It("should emit a versioned YAML document", func() {
		res := runLoshu("", "grid", "09-09-1999", "female", "-o", "yaml", "--name", "nines")
		Expect(res.Err).NotTo(HaveOccurred())

		var reading v1alpha1.LoShuReading
		Expect(yaml.Unmarshal([]byte(res.Stdout), &reading)).To(Succeed())
		Expect(reading.APIVersion).To(Equal("loshu.numerology.dev/v1alpha1"))
		Expect(reading.Kind).To(Equal(v1alpha1.KindLoShuReading))
		Expect(reading.Name).To(Equal("nines"))
		Expect(reading.Status.Grid[0][1].Digits).To(Equal("999999"))
	})

	DescribeTable("rejected input",
		func(args []string, message string) {
			res := runLoshu("", args...)
			Expect(res.Err).To(MatchError(ContainSubstring(message)))
			Expect(res.Stdout).To(BeEmpty())
			Expect(res.Stderr).To(ContainSubstring("Error:"))
		},
		Entry("ISO date", []string{"grid", "1991-10-22", "male"}, "invalid date format"),
		Entry("unknown gender", []string{"grid", "22-10-1991", "x"}, "invalid gender"),
		Entry("padded gender", []string{"grid", "22-10-1991", " male"}, "invalid gender"),
		Entry("bad output format", []string{"grid", "22-10-1991", "male", "-o", "toml"}, "Unsupported value"),
		Entry("padded year", []string{"grid", "22-10-01991", "male"}, "invalid date format"),
		Entry("verbosity with error level", []string{"grid", "22-10-1991", "male", "--log-level", "error", "-v", "1"}, "requires log.level info or debug"),
		Entry("bad log level", []string{"grid", "22-10-1991", "male", "--log-level", "loud"}, "log.level"),
	)
})

var _ = Describe("loshu batch", func() {
	const doc = `defaults:
  gender: male
readings:
  - name: first
    dob: 22-10-1991
  - name: first
    dob: 01-01-2000
  - name: broken
    dob: 22/10/1991
  - name: nodate
  - name: second
    dob: 01-01-2000
    gender: female
`

	var batchPath, textfile string

	BeforeEach(func() {
		batchPath = writeWorkfile("batch.yaml", doc)
		textfile = filepath.Join(workdir, "loshu.prom")
		_ = os.Remove(textfile)
	})

	It("should render successful entries and fail for the rest", func() {
		res := runLoshu("", "batch", batchPath, "-o", "json", "--metrics-textfile", textfile)
		Expect(res.Err).To(MatchError("1 of 3 readings failed"))

		By("checking the rendered list")
		var list v1alpha1.LoShuReadingList
		Expect(json.Unmarshal([]byte(res.Stdout), &list)).To(Succeed())
		Expect(list.Items).To(HaveLen(2))
		Expect(list.Items[0].Name).To(Equal("first"))
		Expect(list.Items[0].Spec.DateOfBirth).To(Equal("22-10-1991"))
		Expect(list.Items[1].Name).To(Equal("second"))
		Expect(list.Items[1].Status.Kua).To(Equal(6))

		By("checking the logs")
		Expect(res.Logs).To(ContainSubstring("Duplicate name found in batch file"))
		Expect(res.Logs).To(ContainSubstring("Skipping batch entry without dob"))
		Expect(res.Logs).To(ContainSubstring("Failed to compute reading"))

		By("checking the metrics textfile")
		data, err := os.ReadFile(textfile)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`loshu_readings_total{outcome="success"} 2`))
		Expect(string(data)).To(ContainSubstring(`loshu_reading_errors_total{reason="invalid_date_format"} 1`))
		Expect(string(data)).To(ContainSubstring(`loshu_kua_numbers_total{kua="6"} 1`))
		Expect(string(data)).To(ContainSubstring(`loshu_missing_digits_total{digit="5"} 2`))
	})

	It("should read the batch from stdin", func() {
		res := runLoshu("readings:\n  - dob: 22-10-1991\n    gender: female\n", "batch", "-", "-o", "yaml")
		Expect(res.Err).NotTo(HaveOccurred())
		Expect(res.Stdout).To(ContainSubstring("kind: LoShuReadingList"))
		Expect(res.Stdout).To(ContainSubstring("name: reading-1"))
	})

	It("should fail for a missing file", func() {
		res := runLoshu("", "batch", filepath.Join(workdir, "absent.yaml"))
		Expect(res.Err).To(MatchError(ContainSubstring("reading batch file")))
	})
})

var _ = Describe("loshu version", func() {
	It("should print build information", func() {
		res := runLoshu("", "version")
		Expect(res.Err).NotTo(HaveOccurred())
		Expect(res.Stdout).To(ContainSubstring("loshu, version"))
	})
})

var _ = Describe("configuration", func() {
	It("should honour the config file and let flags override it", func() {
		cfg := writeWorkfile("loshu.yaml", "output: yaml\nlog:\n  level: debug\n")

		res := runLoshu("", "--config", cfg, "grid", "22-10-1991", "male")
		Expect(res.Err).NotTo(HaveOccurred())
		Expect(res.Stdout).To(ContainSubstring("kind: LoShuReading"))

		res = runLoshu("", "--config", cfg, "--output", "json", "grid", "22-10-1991", "male")
		Expect(res.Err).NotTo(HaveOccurred())
		Expect(res.Stdout).To(HavePrefix("{"))
	})
})
