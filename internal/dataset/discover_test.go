package dataset

import (
	"reflect"
	"testing"

	"bidscan/internal/testsupport"
)

func TestDiscoverSubjects(t *testing.T) {
	root := testsupport.WriteDataset(t,
		"sub-10/anat/sub-10_T1w.nii.gz",
		"sub-01/anat/sub-01_T1w.nii.gz",
		"sub-02/anat/sub-02_T1w.nii.gz",
		"derivatives/fmriprep/report.json",
	)

	subjects, err := DiscoverSubjects(root)
	if err != nil {
		t.Fatalf("DiscoverSubjects: %v", err)
	}
	want := []string{"01", "02", "10"}
	if !reflect.DeepEqual(subjects, want) {
		t.Fatalf("DiscoverSubjects = %v, want %v", subjects, want)
	}
}

func TestDiscoverSubjectsIgnoresFiles(t *testing.T) {
	root := testsupport.WriteDataset(t, "sub-01/anat/sub-01_T1w.nii.gz")
	// A stray file whose name looks like a subject must not be discovered.
	testsupport.WriteDatasetFile(t, root, "sub-02.json")

	subjects, err := DiscoverSubjects(root)
	if err != nil {
		t.Fatalf("DiscoverSubjects: %v", err)
	}
	want := []string{"01"}
	if !reflect.DeepEqual(subjects, want) {
		t.Fatalf("DiscoverSubjects = %v, want %v", subjects, want)
	}
}

func TestDiscoverSubjectsEmptyDataset(t *testing.T) {
	root := testsupport.WriteDataset(t)
	testsupport.MkSubjectDir(t, root, "derivatives")

	subjects, err := DiscoverSubjects(root)
	if err != nil {
		t.Fatalf("DiscoverSubjects: %v", err)
	}
	if len(subjects) != 0 {
		t.Fatalf("expected empty result, got %v", subjects)
	}
}

func TestDiscoverSubjectsMissingRoot(t *testing.T) {
	if _, err := DiscoverSubjects("/does/not/exist"); err == nil {
		t.Fatal("expected error for nonexistent root")
	}
}
