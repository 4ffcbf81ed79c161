// Package v1alpha1 contains the versioned document emitted for a Lo Shu
// reading.
// +groupName=loshu.numerology.dev
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

var (
	// GroupVersion is the group version used to register these objects.
	GroupVersion = schema.GroupVersion{Group: "loshu.numerology.dev", Version: "v1alpha1"}

	// SchemeBuilder registers the reading kinds with a runtime.Scheme.
	SchemeBuilder = runtime.NewSchemeBuilder(addKnownTypes)

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)

func addKnownTypes(scheme *runtime.Scheme) error {
	scheme.AddKnownTypes(GroupVersion, &LoShuReading{}, &LoShuReadingList{})
	metav1.AddToGroupVersion(scheme, GroupVersion)
	return nil
}
