package appeal

import "strings"

// SscsType groups benefits by the paper-form stream they are appealed on.
type SscsType string

const (
	TypeSscs1 SscsType = "sscs1"
	TypeSscs2 SscsType = "sscs2"
	TypeSscs5 SscsType = "sscs5"
	TypeSscs8 SscsType = "sscs8"
)

// Benefit is one entry of the closed benefit catalogue. Code is the short
// name used on the case record; Description the display name printed on
// notices.
type Benefit struct {
	Code        string
	Description string
	SscsType    SscsType
	// Acronym marks codes that claimants commonly write verbatim (PIP, ESA).
	Acronym bool
	// AutoOffice marks benefits handled by a single issuing office, so the
	// office field on the form can be ignored and the default mapping used.
	AutoOffice bool
	// CaseLoaderCode is the numeric category prefix used to derive the
	// caseCode for listing.
	CaseLoaderCode string
}

const (
	BenefitESA               = "ESA"
	BenefitJSA               = "JSA"
	BenefitPIP               = "PIP"
	BenefitDLA               = "DLA"
	BenefitUC                = "UC"
	BenefitIIDB              = "industrialInjuriesDisablement"
	BenefitCarersAllowance   = "carersAllowance"
	BenefitAttendanceAllow   = "attendanceAllowance"
	BenefitMaternityAllow    = "maternityAllowance"
	BenefitIncomeSupport     = "incomeSupport"
	BenefitSocialFund        = "socialFund"
	BenefitBereavement       = "bereavementBenefit"
	BenefitRetirementPension = "retirementPension"
	BenefitBSPS              = "bereavementSupportPaymentScheme"
	BenefitIndustrialDeath   = "industrialDeathBenefit"
	BenefitPensionCredit     = "pensionCredit"
	BenefitChildSupport      = "childSupport"
	BenefitTaxCredit         = "taxCredit"
	BenefitGuardiansAllow    = "guardiansAllowance"
	BenefitTaxFreeChildcare  = "taxFreeChildcare"
	BenefitHRP               = "homeResponsibilitiesProtection"
	BenefitChildBenefit      = "childBenefit"
	BenefitThirtyHours       = "thirtyHoursFreeChildcare"
	BenefitGMP               = "guaranteedMinimumPension"
	BenefitNICredits         = "nationalInsuranceCredits"
	BenefitInfectedBlood     = "infectedBloodCompensation"
)

var benefits = []Benefit{
	{Code: BenefitESA, Description: "Employment and Support Allowance", SscsType: TypeSscs1, Acronym: true, CaseLoaderCode: "051"},
	{Code: BenefitJSA, Description: "Job Seekers Allowance", SscsType: TypeSscs1, Acronym: true, CaseLoaderCode: "073"},
	{Code: BenefitPIP, Description: "Personal Independence Payment", SscsType: TypeSscs1, Acronym: true, CaseLoaderCode: "002"},
	{Code: BenefitDLA, Description: "Disability Living Allowance", SscsType: TypeSscs1, Acronym: true, CaseLoaderCode: "037"},
	{Code: BenefitUC, Description: "Universal Credit", SscsType: TypeSscs1, Acronym: true, AutoOffice: true, CaseLoaderCode: "001"},
	{Code: BenefitIIDB, Description: "Industrial Injuries Disablement Benefit", SscsType: TypeSscs1, Acronym: true, CaseLoaderCode: "067"},
	{Code: BenefitCarersAllowance, Description: "Carer's Allowance", SscsType: TypeSscs1, AutoOffice: true, CaseLoaderCode: "070"},
	{Code: BenefitAttendanceAllow, Description: "Attendance Allowance", SscsType: TypeSscs1, CaseLoaderCode: "013"},
	{Code: BenefitMaternityAllow, Description: "Maternity Allowance", SscsType: TypeSscs1, AutoOffice: true, CaseLoaderCode: "079"},
	{Code: BenefitIncomeSupport, Description: "Income Support", SscsType: TypeSscs1, CaseLoaderCode: "061"},
	{Code: BenefitSocialFund, Description: "Social Fund", SscsType: TypeSscs1, CaseLoaderCode: "088"},
	{Code: BenefitBereavement, Description: "Bereavement Benefit", SscsType: TypeSscs1, AutoOffice: true, CaseLoaderCode: "094"},
	{Code: BenefitRetirementPension, Description: "Retirement Pension", SscsType: TypeSscs1, CaseLoaderCode: "082"},
	{Code: BenefitBSPS, Description: "Bereavement Support Payment Scheme", SscsType: TypeSscs1, AutoOffice: true, CaseLoaderCode: "095"},
	{Code: BenefitIndustrialDeath, Description: "Industrial Death Benefit", SscsType: TypeSscs1, CaseLoaderCode: "064"},
	{Code: BenefitPensionCredit, Description: "Pension Credit", SscsType: TypeSscs1, CaseLoaderCode: "045"},
	{Code: BenefitChildSupport, Description: "Child Support", SscsType: TypeSscs2, AutoOffice: true, CaseLoaderCode: "022"},
	{Code: BenefitTaxCredit, Description: "Tax Credit", SscsType: TypeSscs5, AutoOffice: true, CaseLoaderCode: "053"},
	{Code: BenefitGuardiansAllow, Description: "Guardians Allowance", SscsType: TypeSscs5, AutoOffice: true, CaseLoaderCode: "015"},
	{Code: BenefitTaxFreeChildcare, Description: "Tax-Free Childcare", SscsType: TypeSscs5, AutoOffice: true, CaseLoaderCode: "057"},
	{Code: BenefitHRP, Description: "Home Responsibilities Protection", SscsType: TypeSscs5, AutoOffice: true, CaseLoaderCode: "030"},
	{Code: BenefitChildBenefit, Description: "Child Benefit", SscsType: TypeSscs5, AutoOffice: true, CaseLoaderCode: "021"},
	{Code: BenefitThirtyHours, Description: "30 Hours Free Childcare", SscsType: TypeSscs5, AutoOffice: true, CaseLoaderCode: "058"},
	{Code: BenefitGMP, Description: "Guaranteed Minimum Pension", SscsType: TypeSscs5, AutoOffice: true, CaseLoaderCode: "040"},
	{Code: BenefitNICredits, Description: "National Insurance Credits", SscsType: TypeSscs5, AutoOffice: true, CaseLoaderCode: "041"},
	{Code: BenefitInfectedBlood, Description: "Infected Blood Compensation", SscsType: TypeSscs8, CaseLoaderCode: "093"},
}

// Benefits returns the full catalogue in declaration order.
func Benefits() []Benefit {
	out := make([]Benefit, len(benefits))
	copy(out, benefits)
	return out
}

// BenefitByCode looks a benefit up by its short code, case-insensitively.
func BenefitByCode(code string) *Benefit {
	for i := range benefits {
		if strings.EqualFold(benefits[i].Code, code) {
			return &benefits[i]
		}
	}
	return nil
}

// BenefitByDescription looks a benefit up by its display name,
// case-insensitively.
func BenefitByDescription(desc string) *Benefit {
	for i := range benefits {
		if strings.EqualFold(benefits[i].Description, desc) {
			return &benefits[i]
		}
	}
	return nil
}

// BenefitCodes returns the catalogue short codes in declaration order.
func BenefitCodes() []string {
	out := make([]string, 0, len(benefits))
	for _, b := range benefits {
		out = append(out, b.Code)
	}
	return out
}
