package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the record store backing patient data. Implementations must
// be safe for concurrent use; each operation is individually atomic but no
// cross-operation serialization is provided.
type Repository interface {
	// List returns all patient records in store-native order.
	List(ctx context.Context) ([]*Patient, error)

	// FindByUniqueID returns the first record with the given external
	// identifier, or ErrNotFound.
	FindByUniqueID(ctx context.Context, uniqueID int64) (*Patient, error)

	// FindByID returns the record with the given internal identifier, or
	// ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Patient, error)

	// Create persists a new record, assigning its internal identifier.
	Create(ctx context.Context, p *Patient) error

	// Replace overwrites the full record at the given internal identifier.
	// Returns ErrNotFound when no record has that identifier.
	Replace(ctx context.Context, id uuid.UUID, p *Patient) error

	// AppendMedication adds one entry to the end of the medication list.
	// Returns ErrNotFound when the patient is absent, ErrUpdateFailed when
	// the store reports zero documents modified.
	AppendMedication(ctx context.Context, id uuid.UUID, entry *MedicationEntry) error

	// RemoveMedicationAt removes the entry at the given zero-based position.
	// Returns ErrIndexOutOfRange when index is negative or past the end of
	// the list; the list is left unchanged in that case.
	RemoveMedicationAt(ctx context.Context, id uuid.UUID, index int) error

	// RemoveMedicationByID removes the entry with the given stable
	// medication identifier. Returns ErrNotFound when the patient or the
	// entry is absent.
	RemoveMedicationByID(ctx context.Context, id uuid.UUID, medicationID string) error

	// Delete removes the record. Returns ErrNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
