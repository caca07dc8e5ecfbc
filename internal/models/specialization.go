package models

import (
	"errors"
	"fmt"
)

// Specialization - kategori layanan yang bisa dipilih pendaftar
type Specialization string

const (
	SpecializationDocuments    Specialization = "DOCUMENTS"
	SpecializationConsultation Specialization = "CONSULTATION"
)

var ErrInvalidSpecialization = errors.New("invalid specialization")

// ParseSpecialization - total parse, unrecognized input selalu balik error
func ParseSpecialization(s string) (Specialization, error) {
	switch s {
	case string(SpecializationDocuments):
		return SpecializationDocuments, nil
	case string(SpecializationConsultation):
		return SpecializationConsultation, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSpecialization, s)
	}
}

func (s Specialization) String() string {
	return string(s)
}
