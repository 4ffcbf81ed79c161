package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime"
)

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *LoShuReadingStatus) DeepCopyInto(out *LoShuReadingStatus) {
	*out = *in
	if in.Grid != nil {
		out.Grid = make([][]GridCell, len(in.Grid))
		for i := range in.Grid {
			if in.Grid[i] != nil {
				out.Grid[i] = make([]GridCell, len(in.Grid[i]))
				copy(out.Grid[i], in.Grid[i])
			}
		}
	}
	if in.MissingNumbers != nil {
		out.MissingNumbers = make([]int, len(in.MissingNumbers))
		copy(out.MissingNumbers, in.MissingNumbers)
	}
	if in.Frequencies != nil {
		out.Frequencies = make([]DigitFrequency, len(in.Frequencies))
		copy(out.Frequencies, in.Frequencies)
	}
	in.ComputedAt.DeepCopyInto(&out.ComputedAt)
}

// DeepCopy creates a new LoShuReadingStatus.
func (in *LoShuReadingStatus) DeepCopy() *LoShuReadingStatus {
	if in == nil {
		return nil
	}
	out := new(LoShuReadingStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *LoShuReading) DeepCopyInto(out *LoShuReading) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	out.Spec = in.Spec
	in.Status.DeepCopyInto(&out.Status)
}

// DeepCopy creates a new LoShuReading.
func (in *LoShuReading) DeepCopy() *LoShuReading {
	if in == nil {
		return nil
	}
	out := new(LoShuReading)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *LoShuReading) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *LoShuReadingList) DeepCopyInto(out *LoShuReadingList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	if in.Items != nil {
		out.Items = make([]LoShuReading, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

// DeepCopy creates a new LoShuReadingList.
func (in *LoShuReadingList) DeepCopy() *LoShuReadingList {
	if in == nil {
		return nil
	}
	out := new(LoShuReadingList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *LoShuReadingList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}
