package studydb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeed_Counts verifies the fixed data set lands as 3 patients, 4 visits
// and 5 samples in a single committed batch.
func TestSeed_Counts(t *testing.T) {
	db := setupTestDB(t)

	seeded, err := db.Seed()
	require.NoError(t, err)

	require.Len(t, seeded.PatientIDs, 3)
	require.Len(t, seeded.VisitIDs, 4)
	require.Len(t, seeded.SampleIDs, 5)

	patientCount, err := db.PatientCount()
	require.NoError(t, err)
	assert.Equal(t, 3, patientCount)

	visitCount, err := db.VisitCount()
	require.NoError(t, err)
	assert.Equal(t, 4, visitCount)

	sampleCount, err := db.SampleCount()
	require.NoError(t, err)
	assert.Equal(t, 5, sampleCount)
}

// TestSeed_GeneratedIDsReadBack verifies that a second seed resolves its
// dependent rows against freshly generated patient IDs instead of assuming
// literal values. Duplicated data is the documented consequence of
// reseeding; dangling foreign keys would be a bug.
func TestSeed_GeneratedIDsReadBack(t *testing.T) {
	db := setupTestDB(t)

	first, err := db.Seed()
	require.NoError(t, err)

	second, err := db.Seed()
	require.NoError(t, err)

	for i, id := range second.PatientIDs {
		assert.NotEqual(t, first.PatientIDs[i], id, "second seed must generate fresh patient IDs")
	}

	// Every visit and sample must reference an existing patient
	var orphanVisits int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM clinical_visits v
		WHERE v.patient_id NOT IN (SELECT patient_id FROM patients)`,
	).Scan(&orphanVisits)
	require.NoError(t, err)
	assert.Zero(t, orphanVisits)

	var orphanSamples int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM samples s
		WHERE s.patient_id NOT IN (SELECT patient_id FROM patients)`,
	).Scan(&orphanSamples)
	require.NoError(t, err)
	assert.Zero(t, orphanSamples)

	// The second batch doubled everything
	patientCount, err := db.PatientCount()
	require.NoError(t, err)
	assert.Equal(t, 6, patientCount)
}

// TestSeed_AtomicBatch verifies nothing is left behind when the batch cannot
// commit: seeding into a database whose samples table was removed must roll
// back the patients and visits inserted earlier in the same batch.
func TestSeed_AtomicBatch(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Exec(`DROP TABLE samples`)
	require.NoError(t, err)

	_, err = db.Seed()
	require.Error(t, err)

	// The failed batch must not have committed its patients or visits
	patientCount, err := db.PatientCount()
	require.NoError(t, err)
	assert.Zero(t, patientCount)

	visitCount, err := db.VisitCount()
	require.NoError(t, err)
	assert.Zero(t, visitCount)
}
