package patient

import (
	"time"

	"github.com/google/uuid"
)

// DefaultStatus is assigned to records created without an explicit status.
const DefaultStatus = "normal"

// Patient is the canonical stored record. ID is the store-assigned internal
// identifier, immutable after creation. UniqueID is the client-supplied
// external identifier; the store does not enforce its uniqueness, so lookups
// by UniqueID return the first match.
type Patient struct {
	ID          uuid.UUID         `db:"id" json:"-"`
	UniqueID    int64             `db:"unique_id" json:"unique_id"`
	Name        string            `db:"name" json:"name"`
	PhoneNumber string            `db:"phone_number" json:"phone_number"`
	Age         int               `db:"age" json:"age"`
	Status      string            `db:"status" json:"status"`
	Medications []MedicationEntry `db:"medications" json:"medications"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}

// MedicationEntry is one entry in a patient's ordered medication list.
// ID is assigned when the entry is appended and is stable for the entry's
// lifetime, unlike its position in the list.
type MedicationEntry struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Time      string `json:"time"`
	Notes     string `json:"notes,omitempty"`
}

// Record is the transport representation of a stored patient: the internal
// identifier coerced to its string form and medications defaulted to an
// empty list when absent.
type Record struct {
	ID          string            `json:"id"`
	UniqueID    int64             `json:"unique_id"`
	Name        string            `json:"name"`
	PhoneNumber string            `json:"phone_number"`
	Age         int               `json:"age"`
	Status      string            `json:"status"`
	Medications []MedicationEntry `json:"medications"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Serialize converts a stored patient into its transport record.
func Serialize(p *Patient) Record {
	meds := p.Medications
	if meds == nil {
		meds = []MedicationEntry{}
	}
	return Record{
		ID:          p.ID.String(),
		UniqueID:    p.UniqueID,
		Name:        p.Name,
		PhoneNumber: p.PhoneNumber,
		Age:         p.Age,
		Status:      p.Status,
		Medications: meds,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// SerializeList converts a sequence of stored patients, applying Serialize to
// each. It always returns a non-nil slice so an empty store serializes as [].
func SerializeList(patients []*Patient) []Record {
	records := make([]Record, 0, len(patients))
	for _, p := range patients {
		records = append(records, Serialize(p))
	}
	return records
}
