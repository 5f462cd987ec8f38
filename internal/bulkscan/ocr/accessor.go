package ocr

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
)

// Bool3 is the tri-state reading of an OCR checkbox: true, false, or an
// unparseable raw value.
type Bool3 int

const (
	BoolFalse Bool3 = iota
	BoolTrue
	BoolInvalid
)

// ParseBool3 reads the checkbox conventions used on the paper forms.
func ParseBool3(raw string) Bool3 {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes":
		return BoolTrue
	case "false", "no", "":
		return BoolFalse
	}
	return BoolInvalid
}

// Accessor wraps the flattened OCR map with the typed reads the transform
// and validation steps share.
type Accessor struct {
	fields map[string]string
}

func NewAccessor(fields map[string]string) *Accessor {
	return &Accessor{fields: fields}
}

// IsEmpty reports whether no OCR field carries a value at all.
func (a *Accessor) IsEmpty() bool { return len(a.fields) == 0 }

// Field returns the trimmed value for name, or "".
func (a *Accessor) Field(name string) string {
	return a.fields[name]
}

// Has reports whether the field carries a non-blank value.
func (a *Accessor) Has(name string) bool {
	return a.fields[name] != ""
}

// HasAny reports whether any of the named fields carries a value.
func (a *Accessor) HasAny(names ...string) bool {
	for _, n := range names {
		if a.Has(n) {
			return true
		}
	}
	return false
}

// HasPerson reports whether any field under the given person prefix
// (e.g. "person1") carries a value.
func (a *Accessor) HasPerson(prefix string) bool {
	for name, v := range a.fields {
		if v != "" && strings.HasPrefix(name, prefix+"_") {
			return true
		}
	}
	return false
}

// HasAddress reports whether any address component under the person prefix
// is present.
func (a *Accessor) HasAddress(prefix string) bool {
	return a.HasAny(
		prefix+"_address_line1",
		prefix+"_address_line2",
		prefix+"_address_line3",
		prefix+"_address_line4",
		prefix+"_postcode",
	)
}

// Bool reads a checkbox, recording an error for unparseable values.
func (a *Accessor) Bool(f *appeal.Findings, name string) bool {
	switch ParseBool3(a.Field(name)) {
	case BoolTrue:
		return true
	case BoolInvalid:
		f.AddError(name + " has an invalid value. Should be Yes/No or True/False")
	}
	return false
}

// BoolWarn reads a checkbox, recording a warning instead of an error for
// unparseable values.
func (a *Accessor) BoolWarn(f *appeal.Findings, name string) bool {
	switch ParseBool3(a.Field(name)) {
	case BoolTrue:
		return true
	case BoolInvalid:
		f.AddWarning(name + " has an invalid value. Should be Yes/No or True/False")
	}
	return false
}

// CheckBool reports whether the named checkbox holds a parseable value,
// recording an error when it does not.
func (a *Accessor) CheckBool(f *appeal.Findings, name string) bool {
	if ParseBool3(a.Field(name)) == BoolInvalid {
		f.AddError(name + " has an invalid value. Should be Yes/No or True/False")
		return false
	}
	return true
}

// YesNoField reads a checkbox into the "Yes"/"No" literal, or "" when the
// field is absent. Invalid values record an error and yield "".
func (a *Accessor) YesNoField(f *appeal.Findings, name string) string {
	if !a.Has(name) {
		return ""
	}
	switch ParseBool3(a.Field(name)) {
	case BoolTrue:
		return appeal.Yes
	case BoolFalse:
		return appeal.No
	}
	f.AddError(name + " has an invalid value. Should be Yes/No or True/False")
	return ""
}

// ValidBools filters names down to those whose checkbox parses, recording
// an error per invalid field.
func (a *Accessor) ValidBools(f *appeal.Findings, names []string) []string {
	var valid []string
	for _, n := range names {
		if a.CheckBool(f, n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// TrueOf returns the subset of names whose checkbox is ticked. Callers
// pass pre-validated names so no findings are recorded here.
func (a *Accessor) TrueOf(names []string) []string {
	var ticked []string
	for _, n := range names {
		if ParseBool3(a.Field(n)) == BoolTrue {
			ticked = append(ticked, n)
		}
	}
	return ticked
}

// ExactlyOneTrue reports whether exactly one of the names is ticked.
func (a *Accessor) ExactlyOneTrue(names ...string) bool {
	return len(a.TrueOf(names)) == 1
}

// AllAbsent reports whether none of the names carry a value.
func (a *Accessor) AllAbsent(names ...string) bool {
	return !a.HasAny(names...)
}

const (
	ocrDateLayout  = "02/01/2006"
	caseDateLayout = "2006-01-02"
)

// Date parses a dd/mm/yyyy OCR date into the yyyy-mm-dd case format.
// Unparseable values record an error naming the field.
func (a *Accessor) Date(f *appeal.Findings, name string) string {
	raw := a.Field(name)
	if raw == "" {
		return ""
	}
	t, err := time.Parse(ocrDateLayout, raw)
	if err != nil {
		f.AddError(name + " is an invalid date field. Needs to be a valid date and in the format dd/mm/yyyy")
		return ""
	}
	return t.Format(caseDateLayout)
}

// ParseOcrDate converts a dd/mm/yyyy value to the yyyy-mm-dd case format.
func ParseOcrDate(s string) (string, bool) {
	t, err := time.Parse(ocrDateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format(caseDateLayout), true
}

// ParseCaseDate parses an already-transformed yyyy-mm-dd date.
func ParseCaseDate(s string) (time.Time, bool) {
	t, err := time.Parse(caseDateLayout, s)
	return t, err == nil
}

// JoinNames renders a field-name list for a finding message, in stable
// order.
func JoinNames(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// Fieldf formats a finding message for a named field.
func Fieldf(name, format string, args ...interface{}) string {
	return name + " " + fmt.Sprintf(format, args...)
}
