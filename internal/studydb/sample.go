package studydb

import "fmt"

// Sample types accepted by the samples table CHECK constraint.
const (
	SampleBlood  = "Blood"
	SampleSerum  = "Serum"
	SamplePlasma = "Plasma"
	SampleUrine  = "Urine"
)

// Sample is a biological sample collected from a patient. StorageLocation
// is the only field in the model meant to change after creation.
type Sample struct {
	ID              int64   `json:"sample_id"`
	PatientID       int64   `json:"patient_id"`
	CollectionDate  string  `json:"collection_date"`
	SampleType      string  `json:"sample_type"`
	StorageLocation *string `json:"storage_location"`
}

// CreateSample inserts a new sample and sets the generated ID on the struct.
func (db *DB) CreateSample(s *Sample) error {
	result, err := db.Exec(
		`INSERT INTO samples (patient_id, collection_date, sample_type, storage_location)
		 VALUES (?, ?, ?, ?)`,
		s.PatientID, s.CollectionDate, s.SampleType, s.StorageLocation,
	)
	if err != nil {
		return fmt.Errorf("failed to create sample: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	s.ID = id
	return nil
}

// UpdateSampleLocation moves the sample with the given ID to a new storage
// location. An unknown ID matches zero rows and is a silent no-op; the
// statement commits either way.
func (db *DB) UpdateSampleLocation(sampleID int64, newLocation string) error {
	_, err := db.Exec(
		`UPDATE samples SET storage_location = ? WHERE sample_id = ?`,
		newLocation, sampleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sample location: %w", err)
	}
	return nil
}
