package forms

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
)

// The schema gate rejects payloads carrying fields a form does not define.
// The original SSCS1 layout predates the gated forms and has no schema, so
// SSCS1 payloads always pass.

var commonFields = []string{
	"form_type",
	"benefit_type_description",
	"mrn_date",
	"mrn_late_reason",
	"appeal_late_reason",
	"office",
	"appeal_grounds",
	"signature_name",
	"keep_home_address_confidential",
	"is_hearing_type_oral",
	"is_hearing_type_paper",
	"agree_less_hearing_notice",
	"tell_tribunal_about_dates",
	"hearing_options_exclude_dates",
	"hearing_options_hearing_loop",
	"hearing_options_accessible_hearing_rooms",
	"hearing_options_sign_language_interpreter",
	"hearing_options_sign_language_type",
	"hearing_options_language_type",
	"hearing_options_dialect",
	"hearing_support_arrangements",
	"hearing_type_telephone",
	"hearing_telephone_number",
	"hearing_type_video",
	"hearing_video_email",
	"hearing_type_face_to_face",
}

var personFields = []string{
	"title", "first_name", "last_name",
	"address_line1", "address_line2", "address_line3", "address_line4",
	"postcode", "phone", "mobile", "email", "dob", "nino",
	"want_sms_notifications",
}

var repFields = []string{
	"title", "first_name", "last_name", "company",
	"address_line1", "address_line2", "address_line3", "address_line4",
	"postcode", "phone", "mobile", "email",
	"want_sms_notifications",
}

// GeneralBenefitIndicators are the tick-one benefit checkboxes on the
// SSCS1PE family and SSCS1U forms.
var GeneralBenefitIndicators = []string{
	"is_benefit_type_esa",
	"is_benefit_type_jsa",
	"is_benefit_type_pip",
	"is_benefit_type_dla",
	"is_benefit_type_uc",
	"is_benefit_type_attendance_allowance",
	"is_benefit_type_income_support",
	"is_benefit_type_social_fund",
	"is_benefit_type_pension_credit",
	"is_benefit_type_retirement_pension",
	"is_benefit_type_bereavement_benefit",
	"is_benefit_type_carers_allowance",
	"is_benefit_type_maternity_allowance",
	"is_benefit_type_iidb",
	"is_benefit_type_bereavement_support_payment_scheme",
	"is_benefit_type_industrial_death_benefit",
}

// Sscs5BenefitIndicators are the tick-one checkboxes on the SSCS5 form.
var Sscs5BenefitIndicators = []string{
	"is_benefit_type_tax_credit",
	"is_benefit_type_guardians_allowance",
	"is_benefit_type_tax_free_childcare",
	"is_benefit_type_home_responsibilities_protection",
	"is_benefit_type_child_benefit",
	"is_benefit_type_30_hours_tax_free_childcare",
	"is_benefit_type_guaranteed_minimum_pension",
	"is_benefit_type_national_insurance_credits",
}

// AppellantRoleIndicators are the SSCS2 child-support role checkboxes.
var AppellantRoleIndicators = []string{
	"is_paying_parent",
	"is_receiving_parent",
	"is_another_party",
}

var sscs2Fields = append([]string{
	"person1_child_maintenance_number",
	"other_party_details",
	"other_party_title",
	"other_party_first_name",
	"other_party_last_name",
	"other_party_address_line1",
	"other_party_address_line2",
	"other_party_address_line3",
	"other_party_postcode",
	"is_other_party_address_known",
}, AppellantRoleIndicators...)

// IbcRoleIndicators are the SSCS8 capacity checkboxes, mapped to case
// role values in the transform step.
var IbcRoleIndicators = []string{
	"ibc_role_for_self",
	"ibc_role_for_u18",
	"ibc_role_for_lacking_capacity",
	"ibc_role_for_poa",
	"ibc_role_for_deceased",
}

var sscs8Fields = append([]string{
	"person1_port_of_entry",
	"person1_country",
	"person1_ibca_reference",
	"person2_port_of_entry",
	"person2_country",
}, IbcRoleIndicators...)

var sscs1uFields = []string{
	"is_benefit_type_other",
	"benefit_type_other",
}

var compiled = map[appeal.FormType]*gojsonschema.Schema{}

func init() {
	register(appeal.FormSscs1PE, GeneralBenefitIndicators)
	register(appeal.FormSscs1PEU, GeneralBenefitIndicators)
	register(appeal.FormSscs1U, GeneralBenefitIndicators, sscs1uFields)
	register(appeal.FormSscs2, sscs2Fields)
	register(appeal.FormSscs5, Sscs5BenefitIndicators)
	register(appeal.FormSscs8, sscs8Fields)
}

func register(ft appeal.FormType, extra ...[]string) {
	props := map[string]interface{}{}
	add := func(names []string) {
		for _, n := range names {
			props[n] = map[string]interface{}{
				"type": []string{"string", "boolean", "number", "null"},
			}
		}
	}
	add(commonFields)
	for _, p := range personFields {
		add([]string{"person1_" + p, "person2_" + p})
	}
	for _, r := range repFields {
		add([]string{"representative_" + r})
	}
	for _, e := range extra {
		add(e)
	}
	doc := map[string]interface{}{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("forms: compiling %s schema: %v", ft, err))
	}
	compiled[ft] = s
}

// ValidateSchema checks the raw OCR map against the form's schema and
// records one error per violation. Forms without a schema pass.
func ValidateSchema(f *appeal.Findings, ft appeal.FormType, fields map[string]interface{}) {
	schema, ok := compiled[ft]
	if !ok {
		return
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(fields))
	if err != nil {
		f.AddError("OCR fields could not be read: " + err.Error())
		return
	}
	for _, re := range result.Errors() {
		f.AddError(formatSchemaError(re))
	}
}

func formatSchemaError(re gojsonschema.ResultError) string {
	desc := re.Description()
	if re.Field() == "(root)" {
		if p, ok := re.Details()["property"].(string); ok {
			return fmt.Sprintf("#: unrecognised field %q", p)
		}
		return "#: " + desc
	}
	return "#/" + strings.ReplaceAll(re.Field(), ".", "/") + ": " + desc
}
