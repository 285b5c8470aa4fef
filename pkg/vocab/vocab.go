// Package vocab holds the reference vocabulary of the service: the valid
// county and crop names used to populate selection inputs.
package vocab

import "slices"

// Vocabulary is the set of county and crop names received from the
// service. Order of insertion is the display order. A Vocabulary is
// immutable once created, accessors return copies.
type Vocabulary struct {
	counties []string
	crops    []string
}

// New creates a Vocabulary keeping names in the given order. Duplicates
// are kept, nothing is sorted.
func New(counties, crops []string) *Vocabulary {
	return &Vocabulary{
		counties: slices.Clone(counties),
		crops:    slices.Clone(crops),
	}
}

// Counties returns a copy of the county names.
func (v *Vocabulary) Counties() []string {
	if v == nil {
		return nil
	}
	return slices.Clone(v.counties)
}

// Crops returns a copy of the crop names.
func (v *Vocabulary) Crops() []string {
	if v == nil {
		return nil
	}
	return slices.Clone(v.crops)
}

// HasCounty checks if the county is a member of the vocabulary.
func (v *Vocabulary) HasCounty(county string) bool {
	if v == nil {
		return false
	}
	return slices.Contains(v.counties, county)
}

// HasCrop checks if the crop is a member of the vocabulary.
func (v *Vocabulary) HasCrop(crop string) bool {
	if v == nil {
		return false
	}
	return slices.Contains(v.crops, crop)
}

// IsEmpty is true when the vocabulary is missing, or has no counties or
// no crops.
func (v *Vocabulary) IsEmpty() bool {
	return v == nil || len(v.counties) == 0 || len(v.crops) == 0
}
