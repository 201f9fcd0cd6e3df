package studydb

import "fmt"

// Visit is a single clinical visit. BP, glucose and notes are optional
// readings and map to nullable columns.
type Visit struct {
	ID           int64    `json:"visit_id"`
	PatientID    int64    `json:"patient_id"`
	VisitDate    string   `json:"visit_date"`
	SystolicBP   *int64   `json:"systolic_bp"`
	DiastolicBP  *int64   `json:"diastolic_bp"`
	BloodGlucose *float64 `json:"blood_glucose_mmol_l"`
	Notes        *string  `json:"notes"`
}

// PatientVisit is a visit row joined with the owning patient's name, as
// produced by VisitsForPatient.
type PatientVisit struct {
	PatientName  string   `json:"patient_name"`
	VisitDate    string   `json:"visit_date"`
	SystolicBP   *int64   `json:"systolic_bp"`
	DiastolicBP  *int64   `json:"diastolic_bp"`
	BloodGlucose *float64 `json:"blood_glucose_mmol_l"`
	Notes        *string  `json:"notes"`
}

// CreateVisit inserts a new clinical visit and sets the generated ID on the
// struct. PatientID must reference an existing patient or the engine
// rejects the row.
func (db *DB) CreateVisit(v *Visit) error {
	result, err := db.Exec(
		`INSERT INTO clinical_visits (
			patient_id, visit_date, systolic_bp, diastolic_bp,
			blood_glucose_mmol_l, notes
		) VALUES (?, ?, ?, ?, ?, ?)`,
		v.PatientID, v.VisitDate, v.SystolicBP, v.DiastolicBP, v.BloodGlucose, v.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	v.ID = id
	return nil
}

// VisitsForPatient returns every visit for the given patient joined with the
// patient's name. A patient with no visits (or an unknown ID) yields an
// empty result, not an error.
func (db *DB) VisitsForPatient(patientID int64) ([]PatientVisit, error) {
	rows, err := db.Query(`
		SELECT p.full_name, v.visit_date, v.systolic_bp, v.diastolic_bp,
		       v.blood_glucose_mmol_l, v.notes
		FROM clinical_visits v
		JOIN patients p ON v.patient_id = p.patient_id
		WHERE v.patient_id = ?`,
		patientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var visits []PatientVisit
	for rows.Next() {
		var v PatientVisit
		if err := rows.Scan(
			&v.PatientName,
			&v.VisitDate,
			&v.SystolicBP,
			&v.DiastolicBP,
			&v.BloodGlucose,
			&v.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating visits: %w", err)
	}

	return visits, nil
}
