package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// repoPG implements Repository against the patient table. The medication
// list lives in a single JSONB column so every mutation of it is one
// statement and per-record atomicity holds.
type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, unique_id, name, phone_number, age, status, medications, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.UniqueID, &p.Name, &p.PhoneNumber, &p.Age, &p.Status,
		&p.Medications, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan patient: %w", err)
	}
	return &p, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patient`)
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}
	return patients, nil
}

func (r *repoPG) FindByUniqueID(ctx context.Context, uniqueID int64) (*Patient, error) {
	// unique_id carries no uniqueness constraint; duplicates resolve to the
	// earliest record.
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE unique_id = $1 ORDER BY created_at LIMIT 1`, uniqueID))
}

func (r *repoPG) FindByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	if p.Medications == nil {
		p.Medications = []MedicationEntry{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, unique_id, name, phone_number, age, status, medications)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.UniqueID, p.Name, p.PhoneNumber, p.Age, p.Status, p.Medications)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *repoPG) Replace(ctx context.Context, id uuid.UUID, p *Patient) error {
	if p.Medications == nil {
		p.Medications = []MedicationEntry{}
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE patient
		SET unique_id=$2, name=$3, phone_number=$4, age=$5, status=$6, medications=$7, updated_at=NOW()
		WHERE id = $1`,
		id, p.UniqueID, p.Name, p.PhoneNumber, p.Age, p.Status, p.Medications)
	if err != nil {
		return fmt.Errorf("replace patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) AppendMedication(ctx context.Context, id uuid.UUID, entry *MedicationEntry) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patient
		SET medications = medications || $2, updated_at = NOW()
		WHERE id = $1`,
		id, []MedicationEntry{*entry})
	if err != nil {
		return fmt.Errorf("append medication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, ferr := r.FindByID(ctx, id); errors.Is(ferr, ErrNotFound) {
			return ErrNotFound
		}
		return ErrUpdateFailed
	}
	return nil
}

func (r *repoPG) RemoveMedicationAt(ctx context.Context, id uuid.UUID, index int) error {
	if index < 0 {
		// jsonb deletion treats negative indexes as counting from the end,
		// which is not the contract here.
		return ErrIndexOutOfRange
	}
	// The length guard and the element removal are one statement, so a
	// concurrent append cannot shift the list between check and delete.
	tag, err := r.pool.Exec(ctx, `
		UPDATE patient
		SET medications = medications - $2::int, updated_at = NOW()
		WHERE id = $1 AND jsonb_array_length(medications) > $2`,
		id, index)
	if err != nil {
		return fmt.Errorf("remove medication at %d: %w", index, err)
	}
	if tag.RowsAffected() == 0 {
		if _, ferr := r.FindByID(ctx, id); errors.Is(ferr, ErrNotFound) {
			return ErrNotFound
		}
		return ErrIndexOutOfRange
	}
	return nil
}

func (r *repoPG) RemoveMedicationByID(ctx context.Context, id uuid.UUID, medicationID string) error {
	// Rebuilding through jsonb_agg must keep the surviving entries in their
	// original positions, hence the explicit ordering by ordinality.
	tag, err := r.pool.Exec(ctx, `
		UPDATE patient
		SET medications = (
			SELECT COALESCE(jsonb_agg(t.m ORDER BY t.ord), '[]'::jsonb)
			FROM jsonb_array_elements(medications) WITH ORDINALITY AS t(m, ord)
			WHERE t.m->>'id' <> $2
		), updated_at = NOW()
		WHERE id = $1
		  AND medications @> jsonb_build_array(jsonb_build_object('id', $2::text))`,
		id, medicationID)
	if err != nil {
		return fmt.Errorf("remove medication %s: %w", medicationID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
