package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/saameya786/2026-77591-Biomed-SQLite/internal/monitoring"
	"github.com/saameya786/2026-77591-Biomed-SQLite/internal/studydb"
)

// Constants
const DB_FILE = "biomed_study.db"

// Main
func main() {
	if err := run(DB_FILE, os.Stdout); err != nil {
		monitoring.Log.Error().Err(err).Msg("demo run failed")
		os.Exit(1)
	}
}

// run executes the full demo against the database at dbPath: ensure schema,
// seed, the three reads, one sample-location update, one cascading patient
// delete, then the patient listing again to show the post-delete state.
// The store connection is released on every exit path.
func run(dbPath string, out io.Writer) error {
	logger := monitoring.Log.With().Str("run_id", uuid.NewString()).Logger()

	db, err := studydb.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open study database: %w", err)
	}
	defer db.Close()

	seeded, err := db.Seed()
	if err != nil {
		return err
	}
	logger.Info().
		Int("patients", len(seeded.PatientIDs)).
		Int("visits", len(seeded.VisitIDs)).
		Int("samples", len(seeded.SampleIDs)).
		Msg("seeded demo data")

	if err := printPatients(db, out, "Patients List"); err != nil {
		return err
	}

	firstPatient := seeded.PatientIDs[0]
	visits, err := db.VisitsForPatient(firstPatient)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nVisits for Patient ID %d:\n", firstPatient)
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Name\tVisit Date\tSys BP\tDia BP\tGlucose\tNotes")
	for _, v := range visits {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			v.PatientName, v.VisitDate,
			fmtInt(v.SystolicBP), fmtInt(v.DiastolicBP),
			fmtFloat(v.BloodGlucose), fmtStr(v.Notes))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	highBP, err := db.HighBPPatients()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nPatients with Systolic BP > 140:\n")
	for _, p := range highBP {
		fmt.Fprintf(out, "Name: %s, ID: %d\n", p.FullName, p.ID)
	}

	firstSample := seeded.SampleIDs[0]
	if err := db.UpdateSampleLocation(firstSample, "Lab Shelf 2"); err != nil {
		return err
	}
	logger.Info().Int64("sample_id", firstSample).Str("location", "Lab Shelf 2").Msg("updated sample storage location")

	thirdPatient := seeded.PatientIDs[2]
	if err := db.DeletePatient(thirdPatient); err != nil {
		return err
	}
	logger.Info().Int64("patient_id", thirdPatient).Msg("deleted patient and dependent rows via cascade")

	return printPatients(db, out, "Patients List (after delete)")
}

func printPatients(db *studydb.DB, out io.Writer, title string) error {
	patients, err := db.ListPatients()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s:\n", title)
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Name\tAge\tEnrollment Date")
	for _, p := range patients {
		fmt.Fprintf(w, "%s\t%d\t%s\n", p.FullName, p.Age, p.EnrollmentDate)
	}
	return w.Flush()
}

func fmtInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func fmtStr(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
