package benefit

import (
	"strings"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/forms"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/ocr"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
)

const (
	fieldBenefitDescription = "benefit_type_description"
	fieldBenefitOther       = "benefit_type_other"
	indicatorOther          = "is_benefit_type_other"
)

var indicatorCodes = map[string]string{
	"is_benefit_type_esa":                                appeal.BenefitESA,
	"is_benefit_type_jsa":                                appeal.BenefitJSA,
	"is_benefit_type_pip":                                appeal.BenefitPIP,
	"is_benefit_type_dla":                                appeal.BenefitDLA,
	"is_benefit_type_uc":                                 appeal.BenefitUC,
	"is_benefit_type_attendance_allowance":               appeal.BenefitAttendanceAllow,
	"is_benefit_type_income_support":                     appeal.BenefitIncomeSupport,
	"is_benefit_type_social_fund":                        appeal.BenefitSocialFund,
	"is_benefit_type_pension_credit":                     appeal.BenefitPensionCredit,
	"is_benefit_type_retirement_pension":                 appeal.BenefitRetirementPension,
	"is_benefit_type_bereavement_benefit":                appeal.BenefitBereavement,
	"is_benefit_type_carers_allowance":                   appeal.BenefitCarersAllowance,
	"is_benefit_type_maternity_allowance":                appeal.BenefitMaternityAllow,
	"is_benefit_type_iidb":                               appeal.BenefitIIDB,
	"is_benefit_type_bereavement_support_payment_scheme": appeal.BenefitBSPS,
	"is_benefit_type_industrial_death_benefit":           appeal.BenefitIndustrialDeath,
	"is_benefit_type_tax_credit":                         appeal.BenefitTaxCredit,
	"is_benefit_type_guardians_allowance":                appeal.BenefitGuardiansAllow,
	"is_benefit_type_tax_free_childcare":                 appeal.BenefitTaxFreeChildcare,
	"is_benefit_type_home_responsibilities_protection":   appeal.BenefitHRP,
	"is_benefit_type_child_benefit":                      appeal.BenefitChildBenefit,
	"is_benefit_type_30_hours_tax_free_childcare":        appeal.BenefitThirtyHours,
	"is_benefit_type_guaranteed_minimum_pension":         appeal.BenefitGMP,
	"is_benefit_type_national_insurance_credits":         appeal.BenefitNICredits,
}

// GrammaticalJoin renders a field list as "a, b and c" for finding
// messages.
func GrammaticalJoin(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}
	return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1]
}

// Resolver picks the benefit type for a form family.
type Resolver struct {
	matcher *Matcher
}

func NewResolver(matcher *Matcher) *Resolver {
	return &Resolver{matcher: matcher}
}

// Resolve applies the family's strategy. Fixed-benefit families never
// consult the OCR fields; indicator families require exactly one ticked
// checkbox; SSCS1 takes the free-text description through the matcher.
func (r *Resolver) Resolve(f *appeal.Findings, acc *ocr.Accessor, ft appeal.FormType, caseID string) *appeal.BenefitType {
	switch ft {
	case appeal.FormSscs1:
		return r.fromFreeText(acc, caseID)
	case appeal.FormSscs2:
		return fixed(appeal.BenefitChildSupport)
	case appeal.FormSscs8:
		return fixed(appeal.BenefitInfectedBlood)
	case appeal.FormSscs5:
		return r.fromIndicators(f, acc, forms.Sscs5BenefitIndicators)
	case appeal.FormSscs1U:
		return r.fromIndicatorsWithOther(f, acc, caseID)
	default:
		return r.fromIndicators(f, acc, forms.GeneralBenefitIndicators)
	}
}

func fixed(code string) *appeal.BenefitType {
	b := appeal.BenefitByCode(code)
	return &appeal.BenefitType{Code: b.Code, Description: b.Description}
}

func (r *Resolver) fromFreeText(acc *ocr.Accessor, caseID string) *appeal.BenefitType {
	raw := acc.Field(fieldBenefitDescription)
	if raw == "" {
		return nil
	}
	code := r.matcher.Match(caseID, raw)
	return &appeal.BenefitType{Code: strings.ToUpper(code)}
}

func (r *Resolver) fromIndicators(f *appeal.Findings, acc *ocr.Accessor, indicators []string) *appeal.BenefitType {
	var code, description string
	if raw := acc.Field(fieldBenefitDescription); raw != "" {
		code = r.matcher.Match("", raw)
	}

	valid := acc.ValidBools(f, present(acc, indicators))
	if len(valid) == 0 {
		f.AddError(GrammaticalJoin(indicators) + " fields are empty or false")
	} else {
		ticked := acc.TrueOf(valid)
		switch len(ticked) {
		case 1:
			if b := appeal.BenefitByCode(indicatorCodes[ticked[0]]); b != nil {
				code, description = b.Code, b.Description
			}
		case 0:
			f.AddError(GrammaticalJoin(indicators) + " fields are empty or false")
		default:
			f.AddError(GrammaticalJoin(ticked) + " have contradicting values")
		}
	}
	if code == "" {
		return nil
	}
	return &appeal.BenefitType{Code: code, Description: description}
}

// fromIndicatorsWithOther handles the layout where the indicator set ends
// with an "other" checkbox backed by a free-text benefit name. The free
// text wins an exact catalogue match; a named benefit alongside a ticked
// non-other indicator is a contradiction.
func (r *Resolver) fromIndicatorsWithOther(f *appeal.Findings, acc *ocr.Accessor, caseID string) *appeal.BenefitType {
	indicators := append(append([]string{}, forms.GeneralBenefitIndicators...), indicatorOther)

	var other string
	if raw := acc.Field(fieldBenefitOther); raw != "" {
		other = r.matcher.Match(caseID, raw)
	}
	var code string
	if b := appeal.BenefitByCode(other); b != nil {
		code = b.Code
	}

	valid := acc.ValidBools(f, present(acc, indicators))
	ticked := acc.TrueOf(valid)
	if len(valid) > 0 && len(ticked) > 0 {
		if len(ticked) == 1 {
			if ticked[0] != indicatorOther {
				if other == "" {
					code = ""
					if b := appeal.BenefitByCode(indicatorCodes[ticked[0]]); b != nil {
						code = b.Code
					}
				} else {
					f.AddError(GrammaticalJoin(ticked) + " and " + fieldBenefitOther + " have contradicting values")
				}
			}
		} else {
			msg := GrammaticalJoin(ticked) + " have contradicting values"
			if other != "" || acc.Has(fieldBenefitOther) {
				msg = strings.ReplaceAll(msg, indicatorOther, fieldBenefitOther)
			}
			f.AddError(msg)
		}
	} else if !acc.Has(fieldBenefitOther) {
		msg := GrammaticalJoin(indicators) + " fields are empty"
		f.AddError(strings.ReplaceAll(msg, indicatorOther, fieldBenefitOther))
	}

	b := appeal.BenefitByCode(code)
	if b == nil && !f.HasErrors() {
		f.AddError(fieldBenefitOther + " is invalid")
	}
	if b == nil || f.HasErrors() {
		return nil
	}
	return &appeal.BenefitType{Code: b.Code, Description: b.Description}
}

// present filters the indicator list down to fields the payload carries,
// preserving the form's order.
func present(acc *ocr.Accessor, indicators []string) []string {
	var out []string
	for _, n := range indicators {
		if acc.Has(n) {
			out = append(out, n)
		}
	}
	return out
}
