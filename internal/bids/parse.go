package bids

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
)

// ErrUnparsable marks filenames that do not follow the BIDS naming
// convention closely enough to yield a usable record.
var ErrUnparsable = errors.New("filename does not parse as BIDS")

// File is the structured form of one BIDS data file. Subject, Suffix, and
// Extension are always set on a successfully parsed record; the remaining
// entity fields are empty when the filename does not carry them.
type File struct {
	Subject     string
	Session     string
	Task        string
	Run         string
	Acquisition string
	Direction   string
	Datatype    string
	Suffix      string
	Extension   string
}

// entitySpec binds a recognized filename key to the record field it
// populates. Adding a new recognized entity is a one-line addition here.
type entitySpec struct {
	key    string
	assign func(*File, string)
}

var entityTable = []entitySpec{
	{"sub", func(f *File, v string) { f.Subject = v }},
	{"ses", func(f *File, v string) { f.Session = v }},
	{"task", func(f *File, v string) { f.Task = v }},
	{"run", func(f *File, v string) { f.Run = v }},
	{"acq", func(f *File, v string) { f.Acquisition = v }},
	{"dir", func(f *File, v string) { f.Direction = v }},
}

// valuePattern is the permissive character class for entity values. Hyphens
// are allowed inside values (task-rest-eyes-open), and session/run values may
// be alphanumeric rather than purely numeric.
var (
	valuePattern  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)
	suffixPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// Extensions lists the data file extensions the scanner recognizes, longest
// first so multi-part extensions win.
var Extensions = []string{".nii.gz", ".nii", ".json", ".tsv", ".bval", ".bvec"}

// Datatypes are the BIDS directory-level categories the walker understands.
var Datatypes = []string{"anat", "func", "dwi", "fmap"}

// DatatypeUnknown is reported for files outside any recognized datatype
// directory.
const DatatypeUnknown = "unknown"

// SplitExtension separates a filename into stem and recognized extension.
// The second return is empty when no recognized extension matches.
func SplitExtension(name string) (stem, ext string) {
	for _, candidate := range Extensions {
		if strings.HasSuffix(name, candidate) && len(name) > len(candidate) {
			return name[:len(name)-len(candidate)], candidate
		}
	}
	return name, ""
}

// ParseName parses a bare filename (no directory components) into a File.
// The last underscore-separated segment of the stem is the suffix; every
// other segment in key-value form is matched against the recognized entity
// table. When the same key appears twice, the last occurrence wins. A missing
// subject or suffix makes the whole name unparsable; ParseName never returns
// a partial record alongside a nil error.
func ParseName(name string) (File, error) {
	stem, ext := SplitExtension(name)
	if ext == "" {
		return File{}, fmt.Errorf("%w: %q has no recognized extension", ErrUnparsable, name)
	}

	segments := strings.Split(stem, "_")
	suffix := segments[len(segments)-1]
	if !suffixPattern.MatchString(suffix) {
		return File{}, fmt.Errorf("%w: %q has no valid suffix segment", ErrUnparsable, name)
	}

	record := File{Suffix: suffix, Extension: ext, Datatype: DatatypeUnknown}
	for _, segment := range segments[:len(segments)-1] {
		key, value, ok := strings.Cut(segment, "-")
		if !ok || !valuePattern.MatchString(value) {
			continue
		}
		for _, entity := range entityTable {
			if entity.key == key {
				entity.assign(&record, value)
				break
			}
		}
	}

	if record.Subject == "" {
		return File{}, fmt.Errorf("%w: %q carries no subject entity", ErrUnparsable, name)
	}
	return record, nil
}

// Parse parses a slash-separated relative path within a dataset. Entities
// come from the base name; the datatype comes from the directory components.
func Parse(relpath string) (File, error) {
	record, err := ParseName(path.Base(relpath))
	if err != nil {
		return File{}, err
	}
	record.Datatype = datatypeFromPath(relpath)
	return record, nil
}

func datatypeFromPath(relpath string) string {
	parts := strings.Split(path.Dir(relpath), "/")
	for _, part := range parts {
		for _, dt := range Datatypes {
			if part == dt {
				return dt
			}
		}
	}
	return DatatypeUnknown
}
