/*
Copyright 2025 The loshu-grid Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pipeline

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/numerology-dev/loshu-grid/api/v1alpha1"
	"github.com/numerology-dev/loshu-grid/internal/loshu"
)

// ToAPI converts r into its versioned document.
func (r *Reading) ToAPI(name string) *v1alpha1.LoShuReading {
	return &v1alpha1.LoShuReading{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1alpha1.GroupVersion.String(),
			Kind:       v1alpha1.KindLoShuReading,
		},
		Name: name,
		Spec: v1alpha1.LoShuReadingSpec{
			DateOfBirth: r.BirthDate.String(),
			Gender:      string(r.Gender),
		},
		Status: v1alpha1.LoShuReadingStatus{
			Mulank:         r.Values.Mulank,
			Bhagyank:       r.Values.Bhagyank,
			Kua:            r.Values.Kua,
			Grid:           gridToAPI(r.Grid),
			MissingNumbers: append([]int{}, r.Missing...),
			Frequencies:    frequenciesToAPI(r.Multiset.Frequencies()),
			ComputedAt:     metav1.NewTime(r.ComputedAt),
		},
	}
}

func gridToAPI(g loshu.AnnotatedGrid) [][]v1alpha1.GridCell {
	out := make([][]v1alpha1.GridCell, len(g))
	for r, row := range g {
		out[r] = make([]v1alpha1.GridCell, len(row))
		for c, cell := range row {
			out[r][c] = v1alpha1.GridCell{
				Reference: cell.Reference,
				Digits:    cell.Digits,
				Present:   cell.Present(),
			}
		}
	}
	return out
}

func frequenciesToAPI(freqs []loshu.DigitFrequency) []v1alpha1.DigitFrequency {
	out := make([]v1alpha1.DigitFrequency, len(freqs))
	for i, f := range freqs {
		out[i] = v1alpha1.DigitFrequency{Digit: f.Digit, Count: f.Count}
	}
	return out
}
