package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/numerology-dev/loshu-grid/internal/logging"
)

// BatchEntry is one person in a batch file.
type BatchEntry struct {
	// Name identifies the reading in the output. Defaults to reading-<n>.
	Name string `yaml:"name,omitempty"`

	// DateOfBirth is the birth date in DD-MM-YYYY form.
	DateOfBirth string `yaml:"dob"`

	// Gender overrides the batch default.
	Gender string `yaml:"gender,omitempty"`
}

// BatchDefaults apply to every entry that leaves a field empty.
type BatchDefaults struct {
	Gender string `yaml:"gender,omitempty"`
}

// BatchFile is the on-disk batch document:
//
//	defaults:
//	  gender: female
//	readings:
//	  - name: alice
//	    dob: 22-10-1991
//	    gender: male
//	  - dob: 01-01-2000
type BatchFile struct {
	Defaults BatchDefaults `yaml:"defaults,omitempty"`
	Readings []BatchEntry  `yaml:"readings"`
}

// ParseBatch decodes a batch document and returns its effective entries.
// Entries without a date are skipped, unnamed entries are numbered by their
// position, and when two entries share a name the first one wins. Dates and
// genders are not validated here; the pipeline reports those per entry.
func ParseBatch(data []byte) ([]BatchEntry, error) {
	var doc BatchFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}

	logger := logging.Log()
	out := make([]BatchEntry, 0, len(doc.Readings))
	nameToIndex := make(map[string]int)

	for i, entry := range doc.Readings {
		entry.Name = strings.TrimSpace(entry.Name)
		if entry.Name == "" {
			entry.Name = fmt.Sprintf("reading-%d", i+1)
		}

		if strings.TrimSpace(entry.DateOfBirth) == "" {
			logger.Info("Skipping batch entry without dob", "name", entry.Name, "index", i)
			continue
		}

		if first, exists := nameToIndex[entry.Name]; exists {
			logger.Info("Duplicate name found in batch file - first entry wins",
				"name", entry.Name,
				"winningIndex", first,
				"duplicateIndex", i)
			continue
		}
		nameToIndex[entry.Name] = i

		if entry.Gender == "" {
			entry.Gender = doc.Defaults.Gender
		}
		out = append(out, entry)
	}

	logger.V(logging.DEBUG).Info("Parsed batch file", "entries", len(out), "declared", len(doc.Readings))

	return out, nil
}
