package studydb

import "testing"

// TestCreateSample_UnknownType tests the sample_type CHECK constraint
func TestCreateSample_UnknownType(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedTestDB(t, db)

	sample := &Sample{
		PatientID:      seeded.PatientIDs[0],
		CollectionDate: "2026-03-01",
		SampleType:     "Saliva",
	}
	if err := db.CreateSample(sample); err == nil {
		t.Error("Expected constraint violation for sample_type Saliva, got nil")
	}
}

// TestCreateSample_UnknownPatient tests referential integrity enforcement
func TestCreateSample_UnknownPatient(t *testing.T) {
	db := setupTestDB(t)

	sample := &Sample{
		PatientID:      424242,
		CollectionDate: "2026-03-01",
		SampleType:     SampleBlood,
	}
	if err := db.CreateSample(sample); err == nil {
		t.Error("Expected foreign key violation for unknown patient, got nil")
	}
}

// TestUpdateSampleLocation tests that the update touches exactly the target
// sample and leaves every other row's location unchanged.
func TestUpdateSampleLocation(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedTestDB(t, db)

	target := seeded.SampleIDs[0]
	if err := db.UpdateSampleLocation(target, "Lab Shelf 2"); err != nil {
		t.Fatalf("UpdateSampleLocation failed: %v", err)
	}

	rows, err := db.Query(`SELECT sample_id, storage_location FROM samples`)
	if err != nil {
		t.Fatalf("failed to query samples: %v", err)
	}
	defer rows.Close()

	// Locations the seed assigned, keyed by position in SeedResult.SampleIDs
	seedLocations := map[int64]string{
		seeded.SampleIDs[0]: "Fridge A-03",
		seeded.SampleIDs[1]: "Biobank Rack 5",
		seeded.SampleIDs[2]: "Fridge A-03",
		seeded.SampleIDs[3]: "Biobank Rack 5",
		seeded.SampleIDs[4]: "Fridge A-03",
	}

	checked := 0
	for rows.Next() {
		var id int64
		var location string
		if err := rows.Scan(&id, &location); err != nil {
			t.Fatalf("failed to scan sample: %v", err)
		}
		want := seedLocations[id]
		if id == target {
			want = "Lab Shelf 2"
		}
		if location != want {
			t.Errorf("sample %d location: got %q, want %q", id, location, want)
		}
		checked++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("error iterating samples: %v", err)
	}
	if checked != 5 {
		t.Errorf("Expected to check 5 samples, checked %d", checked)
	}
}

// TestUpdateSampleLocation_UnknownID tests that updating a non-existent
// sample is a no-op, not an error.
func TestUpdateSampleLocation_UnknownID(t *testing.T) {
	db := setupTestDB(t)
	seedTestDB(t, db)

	if err := db.UpdateSampleLocation(9999, "Nowhere"); err != nil {
		t.Fatalf("UpdateSampleLocation with unknown ID should be a no-op, got: %v", err)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM samples WHERE storage_location = 'Nowhere'`).Scan(&n); err != nil {
		t.Fatalf("failed to count samples: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected no samples at 'Nowhere', got %d", n)
	}
}
