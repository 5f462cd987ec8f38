// Package refdata holds the static lookup tables the intake pipeline
// consults: issuing-office mappings, regional processing centres, hearing
// venues and UK ports of entry.
package refdata

import (
	"strconv"
	"strings"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
)

// IbcaOffice is the single issuing office for infected blood compensation
// appeals.
const IbcaOffice = "IBCA"

// OfficeMapping ties an issuing-office name as written on the form to the
// case value and regional centre it resolves to.
type OfficeMapping struct {
	Code           string
	CaseValue      string
	RegionalCentre string
	Default        bool
}

var officeMappings = map[string][]OfficeMapping{
	appeal.BenefitPIP: {
		{Code: "1", CaseValue: "DWP PIP (1)", RegionalCentre: "Newcastle", Default: true},
		{Code: "2", CaseValue: "DWP PIP (2)", RegionalCentre: "Glasgow"},
		{Code: "3", CaseValue: "DWP PIP (3)", RegionalCentre: "Bellevale"},
		{Code: "4", CaseValue: "DWP PIP (4)", RegionalCentre: "Glasgow"},
		{Code: "AE", CaseValue: "DWP PIP (AE)", RegionalCentre: "Newcastle"},
	},
	appeal.BenefitESA: {
		{Code: "Balham DRT", CaseValue: "Balham DRT", RegionalCentre: "Sheffield", Default: true},
		{Code: "Birkenhead LM DRT", CaseValue: "Birkenhead LM DRT", RegionalCentre: "Bellevale"},
		{Code: "Chesterfield DRT", CaseValue: "Chesterfield DRT", RegionalCentre: "Sheffield"},
		{Code: "Sheffield DRT", CaseValue: "Sheffield DRT", RegionalCentre: "Sheffield"},
		{Code: "Worthing DRT", CaseValue: "Worthing DRT", RegionalCentre: "Worthing"},
	},
	appeal.BenefitUC: {
		{Code: "Universal Credit", CaseValue: "Universal Credit", RegionalCentre: "Universal Credit", Default: true},
		{Code: "UC Recovery from Estates", CaseValue: "UC Recovery from Estates", RegionalCentre: "Universal Credit"},
	},
	appeal.BenefitDLA: {
		{Code: "Disability Benefit Centre 4", CaseValue: "DLA Child/Adult", RegionalCentre: "Blackpool", Default: true},
		{Code: "The Pension Service 11", CaseValue: "DLA 65+", RegionalCentre: "Blackpool"},
	},
	appeal.BenefitJSA: {
		{Code: "Worthing DRT", CaseValue: "Worthing DRT", RegionalCentre: "Worthing", Default: true},
	},
	appeal.BenefitCarersAllowance: {
		{Code: "Carer's Allowance Dispute Resolution Team", CaseValue: "Carer's Allowance Dispute Resolution Team", RegionalCentre: "Preston", Default: true},
	},
	appeal.BenefitMaternityAllow: {
		{Code: "Walsall Benefit Centre", CaseValue: "Walsall Benefit Centre", RegionalCentre: "Birmingham", Default: true},
	},
	appeal.BenefitBereavement: {
		{Code: "Bereavement Benefit", CaseValue: "Bereavement Benefit", RegionalCentre: "Dover", Default: true},
	},
	appeal.BenefitBSPS: {
		{Code: "Bereavement Support Payment", CaseValue: "Bereavement Support Payment", RegionalCentre: "Dover", Default: true},
	},
	appeal.BenefitChildSupport: {
		{Code: "Child Maintenance Service Group", CaseValue: "Child Maintenance Service Group", RegionalCentre: "Child Support", Default: true},
	},
	appeal.BenefitInfectedBlood: {
		{Code: IbcaOffice, CaseValue: IbcaOffice, RegionalCentre: IbcaOffice, Default: true},
	},
}

// Every SSCS5 revenue benefit routes to the HMRC child benefit office.
var sscs5Office = OfficeMapping{
	Code: "HMRC CB Office", CaseValue: "HMRC CB Office", RegionalCentre: "HMRC", Default: true,
}

func mappingsFor(benefitCode string) []OfficeMapping {
	if m, ok := officeMappings[benefitCode]; ok {
		return m
	}
	if b := appeal.BenefitByCode(benefitCode); b != nil && b.SscsType == appeal.TypeSscs5 {
		return []OfficeMapping{sscs5Office}
	}
	return nil
}

// OfficeFor resolves the office text written on the form against the
// benefit's known offices.
func OfficeFor(benefitCode, office string) (OfficeMapping, bool) {
	office = strings.TrimSpace(office)
	for _, m := range mappingsFor(benefitCode) {
		if strings.EqualFold(m.Code, office) || strings.EqualFold(m.CaseValue, office) {
			return m, true
		}
	}
	// PIP offices are written as bare numbers or "DWP PIP (n)".
	if n := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(office, "DWP PIP ("), ")")); n != office {
		if _, err := strconv.Atoi(n); err == nil {
			return OfficeFor(benefitCode, n)
		}
	}
	return OfficeMapping{}, false
}

// DefaultOfficeFor returns the benefit's default office, used when the
// benefit routes every appeal to one office regardless of the form.
func DefaultOfficeFor(benefitCode string) (OfficeMapping, bool) {
	for _, m := range mappingsFor(benefitCode) {
		if m.Default {
			return m, true
		}
	}
	return OfficeMapping{}, false
}

// HasOffices reports whether any office mapping exists for the benefit.
func HasOffices(benefitCode string) bool {
	return len(mappingsFor(benefitCode)) > 0
}
