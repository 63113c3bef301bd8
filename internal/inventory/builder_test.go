package inventory

import (
	"testing"

	"bidscan/internal/dataset"
	"bidscan/internal/logging"
	"bidscan/internal/testsupport"
)

func buildFor(t *testing.T, root string, subjects []string) *Result {
	t.Helper()

	walker, err := dataset.NewWalker(root, logging.NewNop())
	if err != nil {
		t.Fatalf("NewWalker: %v", err)
	}
	builder := &Builder{Walker: walker, Subjects: subjects, Logger: logging.NewNop()}
	result, err := builder.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return result
}

func TestBuildPresentAndAbsent(t *testing.T) {
	root := testsupport.WriteDataset(t, "sub-01/anat/sub-01_T1w.nii.gz")
	testsupport.MkSubjectDir(t, root, "sub-02")

	result := buildFor(t, root, []string{"01", "02"})

	if result.Table.Len() != 1 {
		t.Fatalf("row count = %d, want 1", result.Table.Len())
	}
	row := result.Table.Rows()[0]
	if row.Label != "T1w" {
		t.Fatalf("label = %q, want T1w", row.Label)
	}
	if row.Datatype != "anat" {
		t.Fatalf("datatype = %q, want anat", row.Datatype)
	}
	if cell := row.Cell("01"); !cell.Present || cell.Path != "sub-01/anat/sub-01_T1w.nii.gz" {
		t.Fatalf("sub-01 cell = %+v", cell)
	}
	if cell := row.Cell("02"); cell.Present {
		t.Fatalf("sub-02 cell = %+v, want absent", cell)
	}
}

func TestBuildSkipsUnparsableFiles(t *testing.T) {
	root := testsupport.WriteDataset(t,
		"sub-01/anat/sub-01_T1w.nii.gz",
		"sub-01/anat/scratch.tsv",
	)

	result := buildFor(t, root, []string{"01"})

	if result.FilesScanned != 2 || result.FilesParsed != 1 || result.FilesSkipped != 1 {
		t.Fatalf("counters = scanned %d parsed %d skipped %d",
			result.FilesScanned, result.FilesParsed, result.FilesSkipped)
	}
	if result.Table.Len() != 1 {
		t.Fatalf("row count = %d, want 1", result.Table.Len())
	}
}

func TestBuildMissingSubjectDirectory(t *testing.T) {
	root := testsupport.WriteDataset(t, "sub-01/anat/sub-01_T1w.nii.gz")

	result := buildFor(t, root, []string{"01", "99"})

	row := result.Table.Rows()[0]
	if cell := row.Cell("99"); cell.Present {
		t.Fatalf("sub-99 cell = %+v, want absent", cell)
	}
}

func TestBuildEmptyDatasetYieldsEmptyTable(t *testing.T) {
	root := testsupport.WriteDataset(t)
	testsupport.MkSubjectDir(t, root, "sub-01")

	result := buildFor(t, root, []string{"01"})

	if result.Table.Len() != 0 {
		t.Fatalf("row count = %d, want 0", result.Table.Len())
	}
}

func TestBuildLabelAlignsAcrossSubjects(t *testing.T) {
	// Same logical acquisition with filename tokens in different order must
	// land in one row.
	root := testsupport.WriteDataset(t,
		"sub-01/func/sub-01_task-rest_run-1_bold.nii.gz",
		"sub-02/func/sub-02_run-1_task-rest_bold.nii.gz",
	)

	result := buildFor(t, root, []string{"01", "02"})

	if result.Table.Len() != 1 {
		t.Fatalf("row count = %d, want 1", result.Table.Len())
	}
	row := result.Table.Rows()[0]
	if row.Label != "task-rest_run-1_bold" {
		t.Fatalf("label = %q", row.Label)
	}
	if !row.Cell("01").Present || !row.Cell("02").Present {
		t.Fatalf("expected both subjects present: %+v / %+v", row.Cell("01"), row.Cell("02"))
	}
}
