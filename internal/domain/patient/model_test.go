package patient

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestSerialize(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	p := &Patient{
		ID:          id,
		UniqueID:    42,
		Name:        "A",
		PhoneNumber: "555",
		Age:         30,
		Status:      DefaultStatus,
		Medications: []MedicationEntry{{ID: "m1", Name: "X", Dosage: "5mg", Frequency: "daily", Time: "AM"}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	got := Serialize(p)
	want := Record{
		ID:          id.String(),
		UniqueID:    42,
		Name:        "A",
		PhoneNumber: "555",
		Age:         30,
		Status:      DefaultStatus,
		Medications: []MedicationEntry{{ID: "m1", Name: "X", Dosage: "5mg", Frequency: "daily", Time: "AM"}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_NilMedicationsBecomeEmptyList(t *testing.T) {
	got := Serialize(&Patient{ID: uuid.New(), Name: "A"})
	if got.Medications == nil {
		t.Fatal("expected non-nil medications slice")
	}
	if len(got.Medications) != 0 {
		t.Errorf("expected empty medications, got %+v", got.Medications)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if string(decoded["medications"]) != "[]" {
		t.Errorf("expected medications to serialize as [], got %s", decoded["medications"])
	}
}

func TestSerializeList_EmptyIsNonNil(t *testing.T) {
	got := SerializeList(nil)
	if got == nil {
		t.Fatal("expected non-nil slice for empty input")
	}
	if len(got) != 0 {
		t.Errorf("expected empty slice, got %d records", len(got))
	}
}

func TestSerializeList(t *testing.T) {
	patients := []*Patient{
		{ID: uuid.New(), UniqueID: 1, Name: "A"},
		{ID: uuid.New(), UniqueID: 2, Name: "B"},
	}
	got := SerializeList(patients)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	for i, p := range patients {
		if got[i].ID != p.ID.String() || got[i].Name != p.Name {
			t.Errorf("record %d mismatch: %+v vs %+v", i, got[i], p)
		}
	}
}

func TestMedicationEntry_OmitsEmptyOptionalFields(t *testing.T) {
	raw, err := json.Marshal(MedicationEntry{Name: "X", Dosage: "5mg", Frequency: "daily", Time: "AM"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := decoded["id"]; ok {
		t.Error("expected empty id to be omitted")
	}
	if _, ok := decoded["notes"]; ok {
		t.Error("expected empty notes to be omitted")
	}
}
