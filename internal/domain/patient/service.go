package patient

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// Service wraps the record store with identifier resolution and defaulting.
// Handlers hold a Service rather than touching the repository directly.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Status == "" {
		p.Status = DefaultStatus
	}
	return s.repo.Create(ctx, p)
}

// Resolve locates a patient from a client-supplied identifier literal.
// Numeric literals are first matched against the external unique_id; when
// that yields nothing (or the literal is non-numeric) the literal is treated
// as an internal identifier. A literal that is neither numeric nor a valid
// internal identifier is ErrInvalidID. A numeric literal that matches
// nothing under either interpretation is ErrNotFound, not ErrInvalidID:
// numeric literals are well-formed external identifiers, so a miss means
// the record is absent rather than the identifier malformed.
func (s *Service) Resolve(ctx context.Context, patientID string) (*Patient, error) {
	numeric := false
	if n, err := strconv.ParseInt(patientID, 10, 64); err == nil {
		numeric = true
		p, err := s.repo.FindByUniqueID(ctx, n)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	id, err := uuid.Parse(patientID)
	if err != nil {
		if numeric {
			return nil, ErrNotFound
		}
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ReplacePatient(ctx context.Context, internalID string, p *Patient) error {
	id, err := uuid.Parse(internalID)
	if err != nil {
		return ErrInvalidID
	}
	return s.repo.Replace(ctx, id, p)
}

func (s *Service) DeletePatient(ctx context.Context, internalID string) error {
	id, err := uuid.Parse(internalID)
	if err != nil {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

// AddMedication appends an entry to the patient's medication list, assigning
// it a stable identifier, and returns the updated record.
func (s *Service) AddMedication(ctx context.Context, patientID string, entry *MedicationEntry) (*Patient, error) {
	p, err := s.Resolve(ctx, patientID)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.New().String()
	if err := s.repo.AppendMedication(ctx, p.ID, entry); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, p.ID)
}

func (s *Service) ListMedications(ctx context.Context, patientID string) ([]MedicationEntry, error) {
	p, err := s.Resolve(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if p.Medications == nil {
		return []MedicationEntry{}, nil
	}
	return p.Medications, nil
}

// RemoveMedicationAt removes the medication at the given zero-based position
// in the patient's list.
func (s *Service) RemoveMedicationAt(ctx context.Context, patientID string, index int) error {
	p, err := s.Resolve(ctx, patientID)
	if err != nil {
		return err
	}
	return s.repo.RemoveMedicationAt(ctx, p.ID, index)
}

// RemoveMedicationByID removes the medication with the given stable
// identifier from the patient's list.
func (s *Service) RemoveMedicationByID(ctx context.Context, patientID, medicationID string) error {
	p, err := s.Resolve(ctx, patientID)
	if err != nil {
		return err
	}
	return s.repo.RemoveMedicationByID(ctx, p.ID, medicationID)
}
