package studydb

import "fmt"

// Gender values accepted by the patients table CHECK constraint.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Patient is an enrolled study participant.
type Patient struct {
	ID             int64  `json:"patient_id"`
	FullName       string `json:"full_name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	EnrollmentDate string `json:"enrollment_date"`
}

// CreatePatient inserts a new patient and sets the generated ID on the
// struct. Identifiers are assigned by the store; callers must read them
// back from here rather than assume sequential values.
func (db *DB) CreatePatient(p *Patient) error {
	result, err := db.Exec(
		`INSERT INTO patients (full_name, age, gender, enrollment_date)
		 VALUES (?, ?, ?, ?)`,
		p.FullName, p.Age, p.Gender, p.EnrollmentDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	p.ID = id
	return nil
}

// ListPatients returns all patients in natural insertion order.
func (db *DB) ListPatients() ([]Patient, error) {
	rows, err := db.Query(
		`SELECT patient_id, full_name, age, gender, enrollment_date FROM patients`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query patients: %w", err)
	}
	defer rows.Close()

	var patients []Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.FullName, &p.Age, &p.Gender, &p.EnrollmentDate); err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, nil
}

// HighBPPatients returns the distinct patients with at least one visit where
// systolic_bp exceeded 140. Membership is checked with an IN subquery
// against clinical_visits; a join would repeat a patient once per
// qualifying visit.
func (db *DB) HighBPPatients() ([]Patient, error) {
	rows, err := db.Query(`
		SELECT patient_id, full_name, age, gender, enrollment_date
		FROM patients
		WHERE patient_id IN (
			SELECT patient_id FROM clinical_visits WHERE systolic_bp > 140
		)`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query high BP patients: %w", err)
	}
	defer rows.Close()

	var patients []Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.FullName, &p.Age, &p.Gender, &p.EnrollmentDate); err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, nil
}

// DeletePatient removes the patient with the given ID. The schema's
// ON DELETE CASCADE removes the patient's visits and samples in the same
// statement. Deleting an unknown ID is a no-op, not an error.
func (db *DB) DeletePatient(patientID int64) error {
	if _, err := db.Exec(`DELETE FROM patients WHERE patient_id = ?`, patientID); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}
