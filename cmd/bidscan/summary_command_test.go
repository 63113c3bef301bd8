package main

import (
	"testing"

	"bidscan/internal/testsupport"
)

func TestSummaryCommand(t *testing.T) {
	withoutConfig(t)
	root := testsupport.WriteDataset(t,
		"sub-01/anat/sub-01_T1w.nii.gz",
		"sub-01/func/sub-01_task-rest_bold.nii.gz",
		"sub-02/ses-baseline/anat/sub-02_ses-baseline_T1w.nii.gz",
	)

	stdout, err := runCLI(t, "summary", root)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	requireContains(t, stdout, "Dataset: "+root)
	requireContains(t, stdout, "Subjects")
	requireContains(t, stdout, "baseline")
	requireContains(t, stdout, "anat, func")
	requireContains(t, stdout, "rest")
	requireContains(t, stdout, "T1w")
}

func TestSummaryMissingRoot(t *testing.T) {
	withoutConfig(t)

	if _, err := runCLI(t, "summary", "/does/not/exist"); err == nil {
		t.Fatal("expected error for missing dataset root")
	}
}

func TestSummaryNoArgsNoConfigFails(t *testing.T) {
	withoutConfig(t)

	_, err := runCLI(t, "summary")
	if err == nil {
		t.Fatal("expected error without arguments or configuration")
	}
}
