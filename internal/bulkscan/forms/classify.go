// Package forms resolves which paper form a scanned payload came from and
// gates the payload against that form's field schema.
package forms

import (
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
)

// Classify resolves the effective form type. The OCR form_type field wins
// when it names a known form; otherwise the envelope's declared form type
// is used when known; otherwise the result is FormUnknown. The second
// return reports whether the resolved type differs from the declared one,
// which downstream document subtyping needs to know.
func Classify(ocrValue, declared string) (appeal.FormType, bool) {
	resolved := appeal.FormUnknown
	if ft := appeal.ParseFormType(ocrValue); ft != appeal.FormUnknown {
		resolved = ft
	} else if ft := appeal.ParseFormType(declared); ft != appeal.FormUnknown {
		resolved = ft
	}
	updated := resolved != appeal.FormUnknown &&
		appeal.ParseFormType(declared) != resolved
	return resolved, updated
}
