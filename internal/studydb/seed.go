package studydb

import "fmt"

// SeedResult reports the identifiers assigned to the seeded rows, in
// insertion order. Callers address seeded rows through these rather than
// assuming literal IDs: on a file that has been seeded before, the engine
// hands out fresh values.
type SeedResult struct {
	PatientIDs []int64
	VisitIDs   []int64
	SampleIDs  []int64
}

// Seed inserts the fixed demo data set: 3 patients, 4 visits, 5 samples.
// All rows commit as a single transaction; the dependent visit and sample
// rows use the patient IDs read back from the patient inserts. Seed is not
// idempotent — calling it again duplicates the data set.
func (db *DB) Seed() (*SeedResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	patients := []Patient{
		{FullName: "John Doe", Age: 45, Gender: GenderMale, EnrollmentDate: "2026-01-01"},
		{FullName: "Jane Smith", Age: 52, Gender: GenderFemale, EnrollmentDate: "2026-01-15"},
		{FullName: "Alex Johnson", Age: 38, Gender: GenderOther, EnrollmentDate: "2026-02-01"},
	}

	result := &SeedResult{}
	for _, p := range patients {
		res, err := tx.Exec(
			`INSERT INTO patients (full_name, age, gender, enrollment_date)
			 VALUES (?, ?, ?, ?)`,
			p.FullName, p.Age, p.Gender, p.EnrollmentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed patient %q: %w", p.FullName, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get last insert ID: %w", err)
		}
		result.PatientIDs = append(result.PatientIDs, id)
	}

	// Visit distribution: John Doe 2, Jane Smith 1, Alex Johnson 1.
	visits := []Visit{
		{PatientID: result.PatientIDs[0], VisitDate: "2026-01-10", SystolicBP: int64Ptr(130), DiastolicBP: int64Ptr(85), BloodGlucose: floatPtr(5.5), Notes: strPtr("Stable")},
		{PatientID: result.PatientIDs[0], VisitDate: "2026-02-10", SystolicBP: int64Ptr(145), DiastolicBP: int64Ptr(90), BloodGlucose: floatPtr(6.0), Notes: strPtr("High BP noted")},
		{PatientID: result.PatientIDs[1], VisitDate: "2026-01-20", SystolicBP: int64Ptr(120), DiastolicBP: int64Ptr(80), BloodGlucose: floatPtr(4.8), Notes: strPtr("Good")},
		{PatientID: result.PatientIDs[2], VisitDate: "2026-02-05", SystolicBP: int64Ptr(150), DiastolicBP: int64Ptr(95), BloodGlucose: floatPtr(7.2), Notes: strPtr("Monitor glucose")},
	}
	for _, v := range visits {
		res, err := tx.Exec(
			`INSERT INTO clinical_visits (
				patient_id, visit_date, systolic_bp, diastolic_bp,
				blood_glucose_mmol_l, notes
			) VALUES (?, ?, ?, ?, ?, ?)`,
			v.PatientID, v.VisitDate, v.SystolicBP, v.DiastolicBP, v.BloodGlucose, v.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed visit on %s: %w", v.VisitDate, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get last insert ID: %w", err)
		}
		result.VisitIDs = append(result.VisitIDs, id)
	}

	// Sample distribution: John Doe 2, Jane Smith 2, Alex Johnson 1.
	samples := []Sample{
		{PatientID: result.PatientIDs[0], CollectionDate: "2026-01-10", SampleType: SampleBlood, StorageLocation: strPtr("Fridge A-03")},
		{PatientID: result.PatientIDs[0], CollectionDate: "2026-02-10", SampleType: SampleSerum, StorageLocation: strPtr("Biobank Rack 5")},
		{PatientID: result.PatientIDs[1], CollectionDate: "2026-01-20", SampleType: SamplePlasma, StorageLocation: strPtr("Fridge A-03")},
		{PatientID: result.PatientIDs[1], CollectionDate: "2026-01-25", SampleType: SampleUrine, StorageLocation: strPtr("Biobank Rack 5")},
		{PatientID: result.PatientIDs[2], CollectionDate: "2026-02-05", SampleType: SampleBlood, StorageLocation: strPtr("Fridge A-03")},
	}
	for _, s := range samples {
		res, err := tx.Exec(
			`INSERT INTO samples (patient_id, collection_date, sample_type, storage_location)
			 VALUES (?, ?, ?, ?)`,
			s.PatientID, s.CollectionDate, s.SampleType, s.StorageLocation,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed sample on %s: %w", s.CollectionDate, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get last insert ID: %w", err)
		}
		result.SampleIDs = append(result.SampleIDs, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return result, nil
}

// Helper functions for creating pointer values
func strPtr(s string) *string {
	return &s
}

func int64Ptr(i int64) *int64 {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
