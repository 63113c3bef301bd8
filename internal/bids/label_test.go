package bids

import "testing"

func TestLabelFixedFieldOrder(t *testing.T) {
	tests := []struct {
		name string
		file File
		want string
	}{
		{
			name: "suffix only",
			file: File{Subject: "01", Suffix: "T1w"},
			want: "T1w",
		},
		{
			name: "task and run",
			file: File{Subject: "01", Task: "rest", Run: "1", Suffix: "bold"},
			want: "task-rest_run-1_bold",
		},
		{
			name: "all entities",
			file: File{Subject: "01", Session: "baseline", Task: "nback", Run: "2", Acquisition: "highres", Direction: "AP", Suffix: "bold"},
			want: "task-nback_acq-highres_dir-AP_run-2_ses-baseline_bold",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.file.Label(); got != tc.want {
				t.Fatalf("Label() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLabelInvariantUnderTokenOrder(t *testing.T) {
	a, err := ParseName("sub-01_task-rest_run-1_bold.nii.gz")
	if err != nil {
		t.Fatalf("ParseName: %v", err)
	}
	b, err := ParseName("sub-01_run-1_task-rest_bold.nii.gz")
	if err != nil {
		t.Fatalf("ParseName: %v", err)
	}
	if a.Label() != b.Label() {
		t.Fatalf("labels differ for reordered tokens: %q vs %q", a.Label(), b.Label())
	}
}

func TestLabelSubjectIndependent(t *testing.T) {
	a, err := ParseName("sub-01_task-rest_bold.nii.gz")
	if err != nil {
		t.Fatalf("ParseName: %v", err)
	}
	b, err := ParseName("sub-42_task-rest_bold.nii.gz")
	if err != nil {
		t.Fatalf("ParseName: %v", err)
	}
	if a.Label() != b.Label() {
		t.Fatalf("labels differ across subjects: %q vs %q", a.Label(), b.Label())
	}
}
