package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// KindLoShuReading is the kind of a single reading document.
	KindLoShuReading = "LoShuReading"
	// KindLoShuReadingList is the kind of a batch of readings.
	KindLoShuReadingList = "LoShuReadingList"
)

// LoShuReadingSpec holds the inputs of a reading exactly as they were accepted.
type LoShuReadingSpec struct {
	// DateOfBirth is the birth date in DD-MM-YYYY form. Leading zeros may be
	// omitted.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:Pattern=`^[0-9]{1,2}-[0-9]{1,2}-[0-9]{1,4}$`
	DateOfBirth string `json:"dateOfBirth"`

	// Gender is the normalised gender, "male" or "female".
	// +kubebuilder:validation:Enum=male;female
	// +kubebuilder:validation:Required
	Gender string `json:"gender"`
}

// GridCell is one annotated position of the Lo Shu grid.
type GridCell struct {
	// Reference is the Lo Shu number at this position.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=9
	Reference int `json:"reference"`

	// Digits is Reference repeated once per occurrence. Empty when absent.
	// +kubebuilder:validation:Pattern=`^[1-9]*$`
	// +kubebuilder:validation:Optional
	Digits string `json:"digits,omitempty"`

	// Present is false when Reference does not occur in the reading.
	Present bool `json:"present"`
}

// DigitFrequency is the occurrence count of one digit.
type DigitFrequency struct {
	// +kubebuilder:validation:Minimum=0
	// +kubebuilder:validation:Maximum=9
	Digit int `json:"digit"`

	// +kubebuilder:validation:Minimum=1
	Count int `json:"count"`
}

// LoShuReadingStatus carries the computed figures.
type LoShuReadingStatus struct {
	// Mulank is the reduced digit sum of the day of month.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=9
	Mulank int `json:"mulank"`

	// Bhagyank is the reduced digit sum of the full date.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=9
	Bhagyank int `json:"bhagyank"`

	// Kua is the gender adjusted reduced digit sum of the year.
	// It does not contribute to Grid, MissingNumbers or Frequencies.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=9
	Kua int `json:"kua"`

	// Grid is the 3x3 annotated grid in reference order.
	// +kubebuilder:validation:MinItems=3
	// +kubebuilder:validation:MaxItems=3
	Grid [][]GridCell `json:"grid"`

	// MissingNumbers are the digits 1..9 absent from the reading, ascending.
	// +kubebuilder:validation:MaxItems=9
	MissingNumbers []int `json:"missingNumbers"`

	// Frequencies lists each occurring digit with its count, ascending by digit.
	Frequencies []DigitFrequency `json:"frequencies"`

	// ComputedAt is when the reading was produced.
	ComputedAt metav1.Time `json:"computedAt"`
}

// LoShuReading is the Schema for a single reading.
type LoShuReading struct {
	metav1.TypeMeta `json:",inline"`

	// Name identifies the reading within a batch.
	Name string `json:"name,omitempty"`

	Spec   LoShuReadingSpec   `json:"spec"`
	Status LoShuReadingStatus `json:"status"`
}

// LoShuReadingList contains a list of readings.
type LoShuReadingList struct {
	metav1.TypeMeta `json:",inline"`

	// Items is the list of readings.
	Items []LoShuReading `json:"items"`
}

// NewLoShuReadingList wraps items in a list document with its type metadata set.
func NewLoShuReadingList(items ...LoShuReading) *LoShuReadingList {
	if items == nil {
		items = []LoShuReading{}
	}
	return &LoShuReadingList{
		TypeMeta: metav1.TypeMeta{
			APIVersion: GroupVersion.String(),
			Kind:       KindLoShuReadingList,
		},
		Items: items,
	}
}
