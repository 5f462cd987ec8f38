// Package validate checks a transformed case for everything that should
// stop or flag its creation: missing parties, malformed identifiers,
// unknown benefits and offices, and impossible dates.
package validate

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/forms"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/ocr"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/platform/postcode"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/refdata"
)

const (
	person1    = "person1"
	person2    = "person2"
	repType    = "representative"
	otherParty = "other_party"
)

var (
	phoneRe = regexp.MustCompile(`^((?:(?:\(?(?:0(?:0|11)\)?[\s-]?\(?|\+)\d{1,4}\)?[\s-]?(?:\(?0\)?[\s-]?)?)|(?:\(?0))(?:(?:\d{5}\)?[\s-]?\d{4,5})|(?:\d{4}\)?[\s-]?(?:\d{5}|\d{3}[\s-]?\d{3}))|(?:\d{3}\)?[\s-]?\d{3}[\s-]?\d{3,4})|(?:\d{2}\)?[\s-]?\d{4}[\s-]?\d{4}))(?:[\s-]?(?:x|ext\.?|\#)\d{3,4})?)?$`)

	ukNumberRe = regexp.MustCompile(`^\(?(?:(?:0(?:0|11)\)?[\s-]?\(?|\+)44\)?[\s-]?\(?(?:0\)?[\s-]?\(?)?|0)(?:\d{2}\)?[\s-]?\d{4}[\s-]?\d{4}|\d{3}\)?[\s-]?\d{3}[\s-]?\d{3,4}|\d{4}\)?[\s-]?(?:\d{5}|\d{3}[\s-]?\d{3})|\d{5}\)?[\s-]?\d{4,5}|8(?:00[\s-]?11[\s-]?11|45[\s-]?46[\s-]?4\d))(?:(?:[\s-]?(?:x|ext\.?\s?|\#)\d+)?)$`)

	addressRe = regexp.MustCompile(`^[a-zA-ZÀ-ž0-9][a-zA-ZÀ-ž0-9 \r\n.“”",’?!\[\]()/£:\\_+\-%&;]+$`)
	countyRe  = regexp.MustCompile(`^\.$|^[a-zA-ZÀ-ž0-9][a-zA-ZÀ-ž0-9 \r\n.“”",’?!\[\]()/£:\\_+\-%&;]+$`)

	ninoBodyRe = regexp.MustCompile(`^[A-CEGHJ-PR-TW-Z][A-CEGHJ-NPR-TW-Z]\d{6}[A-D]?$`)
	ibcaRefRe  = regexp.MustCompile(`^[A-Za-z]\d{2}[A-Za-z]\d{2}$`)
)

var forbiddenNinoPrefixes = []string{"BG", "GB", "NK", "KN", "TN", "NT", "ZZ"}

// ValidNino checks the national insurance number shape after stripping
// spaces.
func ValidNino(nino string) bool {
	n := strings.ToUpper(strings.ReplaceAll(nino, " ", ""))
	for _, p := range forbiddenNinoPrefixes {
		if strings.HasPrefix(n, p) {
			return false
		}
	}
	return ninoBodyRe.MatchString(n)
}

// Options carries the per-call switches for a validation pass.
type Options struct {
	Mode Mode
	// IgnoreWarnings suppresses soft findings the caller chose to accept.
	IgnoreWarnings bool
	// IgnoreMrn skips the reconsideration-notice date checks.
	IgnoreMrn bool
	// IgnorePartyRole skips the child-support role check; the intake path
	// already validated it during transformation.
	IgnorePartyRole bool
	// Event is the case event being validated against, when known.
	Event appeal.EventType
}

type Validator struct {
	postcodes      *postcode.Verifier
	ucOfficeActive bool
	log            zerolog.Logger
}

func New(postcodes *postcode.Verifier, ucOfficeActive bool, log zerolog.Logger) *Validator {
	return &Validator{
		postcodes:      postcodes,
		ucOfficeActive: ucOfficeActive,
		log:            log.With().Str("component", "validate").Logger(),
	}
}

// Validate runs every check against the case, appending findings to f.
// The case is annotated in place: the regional processing centre is set
// from a valid postcode, the benefit type is normalised against the
// catalogue, and suppressed child-support fields are removed.
func (v *Validator) Validate(ctx context.Context, f *appeal.Findings, acc *ocr.Accessor, c *appeal.Case, opts Options) {
	if c == nil || c.Appeal == nil {
		return
	}
	ap := c.Appeal
	m := opts.Mode
	appellantType := v.person1OrPerson2(ap.Appellant)

	benefitCode := ""
	if ap.BenefitType != nil {
		benefitCode = ap.BenefitType.Code
	}
	isIbc := benefitCode == appeal.BenefitInfectedBlood || c.FormType == appeal.FormSscs8
	validateIbcRoleField := c.FormType == appeal.FormSscs8 && opts.Event == appeal.EventValidAppealCreated

	v.checkAppellant(ctx, f, acc, c, appellantType, opts, isIbc, validateIbcRoleField)

	if isIbc && opts.Event != appeal.EventValidAppealCreated {
		v.checkAppealReasons(f, acc, ap, m)
	}

	v.checkRepresentative(ctx, f, acc, c, opts, isIbc)
	v.checkMrnDetails(f, acc, ap, c.FormType, opts)

	if c.FormType == appeal.FormSscs2 {
		v.checkChildMaintenance(f, c, opts)
		v.checkOtherParty(f, c, opts)
	}

	v.checkExcludeDates(f, ap, m)
	v.checkBenefitType(f, ap, c.FormType, m)
	v.checkHearingType(f, ap, m)
	v.checkHearingSubtypeForOral(f, ap, c.FormType, m)
	v.checkDocuments(f, c.Documents)
}

func (v *Validator) person1OrPerson2(a *appeal.Appellant) string {
	if a == nil || a.Appointee.IsEmpty() {
		return person1
	}
	return person2
}

func warningRole(personType string, a *appeal.Appellant) string {
	switch personType {
	case repType:
		return roleRep
	case otherParty:
		return roleOtherParty
	case person2:
		return roleAppellant
	}
	if a == nil || a.Appointee.IsEmpty() {
		return roleAppellant
	}
	return roleAppointee
}

func (v *Validator) checkAppellant(ctx context.Context, f *appeal.Findings, acc *ocr.Accessor, c *appeal.Case,
	personType string, opts Options, isIbc, validateIbcRoleField bool) {

	ap := c.Appeal
	a := ap.Appellant
	m := opts.Mode
	role := warningRole(personType, a)

	if a == nil {
		idField := "nino"
		if isIbc {
			idField = "ibca_reference"
		}
		for _, field := range []string{"title", "first_name", "last_name", "address_line1", "address_line3", "address_line4", "postcode", idField} {
			f.AddWarning(fieldName(m, personType, role, field) + " " + isEmpty)
		}
		return
	}

	if !a.Appointee.IsEmpty() {
		v.checkPersonName(f, a.Appointee.Name, person1, a, m, isIbc)
		v.checkPersonAddressAndDob(ctx, f, acc, c, a.Appointee.Address, &a.Appointee.Identity, person1, a, isIbc, m)
		v.checkMobile(f, a.Appointee.Contact, person1, a, m)
	}

	v.checkPersonName(f, a.Name, personType, a, m, isIbc)
	v.checkPersonAddressAndDob(ctx, f, acc, c, a.Address, &a.Identity, personType, a, isIbc, m)

	if isIbc {
		v.checkIbcaReference(f, a, personType, m)
	} else {
		v.checkNino(f, a, personType, m)
	}

	if c.FormType == appeal.FormSscs8 {
		v.checkIbcRole(f, acc, a, personType, validateIbcRoleField)
	}

	v.checkMobile(f, a.Contact, personType, a, m)
	v.checkHearingSubtypeDetails(f, ap.HearingSubtype, m)

	if !opts.IgnorePartyRole && c.FormType == appeal.FormSscs2 {
		v.checkAppellantRole(f, a.Role, opts)
	}
}

func (v *Validator) checkPersonName(f *appeal.Findings, name appeal.Name, personType string,
	a *appeal.Appellant, m Mode, isIbc bool) {

	role := warningRole(personType, a)
	if !isIbc {
		if name.Title == "" {
			f.AddWarning(fieldName(m, personType, role, "title") + " " + isEmpty)
		} else if !refdata.ValidTitle(name.Title) {
			f.AddWarning(fieldName(m, personType, role, "title") + " " + isInvalid)
		}
	}
	if name.FirstName == "" {
		f.AddWarning(fieldName(m, personType, role, "first_name") + " " + isEmpty)
	}
	if name.LastName == "" {
		f.AddWarning(fieldName(m, personType, role, "last_name") + " " + isEmpty)
	}
}

func (v *Validator) checkPersonAddressAndDob(ctx context.Context, f *appeal.Findings, acc *ocr.Accessor,
	c *appeal.Case, addr appeal.Address, identity *appeal.Identity, personType string,
	a *appeal.Appellant, isIbc bool, m Mode) {

	role := warningRole(personType, a)
	line4Present := acc != nil && acc.Has(personType+"_address_line4")

	// The overseas layout has no mainland flag on older cases.
	if isIbc && addr.InMainlandUK == "" {
		adjusted := addr
		adjusted.InMainlandUK = appeal.YesNo(addr.PortOfEntry == "")
		addr = adjusted
		if personType == v.person1OrPerson2(a) && a != nil {
			a.Address.InMainlandUK = adjusted.InMainlandUK
		}
	}

	if addr.Line1 == "" {
		f.AddWarning(fieldName(m, personType, role, "address_line1") + " " + isEmpty)
	} else if !addressRe.MatchString(addr.Line1) {
		f.AddWarning(fieldName(m, personType, role, "address_line1") + " has invalid characters at the beginning")
	}

	townField := "address_line2"
	if isIbc {
		if acc != nil && acc.Has(personType+"_address_line3") {
			townField = "address_line3"
		}
	} else if line4Present {
		townField = "address_line3"
	}
	if addr.Town == "" {
		f.AddWarning(fieldName(m, personType, role, townField) + " " + isEmpty)
	} else if !addressRe.MatchString(addr.Town) {
		f.AddWarning(fieldName(m, personType, role, townField) + " has invalid characters at the beginning")
	}

	if !isIbc {
		countyField := "address_line3"
		if line4Present {
			countyField = "address_line4"
		}
		if addr.County == "" {
			f.AddWarning(fieldName(m, personType, role, countyField) + " " + isEmpty)
		} else if !countyRe.MatchString(addr.County) {
			f.AddWarning(fieldName(m, personType, role, countyField) + " has invalid characters at the beginning")
		}
	}

	if v.checkPostcode(ctx, f, addr, personType, a, m) {
		if personType == v.person1OrPerson2(a) {
			isPort := addr.InMainlandUK == appeal.No
			postcodeOrPort := addr.Postcode
			if isPort {
				postcodeOrPort = addr.PortOfEntry
			}
			rpc, ok := refdata.RpcByPostcode(postcodeOrPort, isIbc)
			if ok {
				c.Region = rpc.Name
				c.RegionalProcessingCentre = &rpc
			} else if !isPort {
				f.AddWarning(fieldName(m, personType, role, "postcode") +
					" is not a postcode that maps to a regional processing center")
			}
		}
	}

	if identity != nil {
		v.checkDate(f, identity.DOB, fieldName(m, personType, role, "dob"), true)
	}
}

// checkPostcode reports whether the address resolves to a usable
// location. Overseas appellants are checked against the port list
// instead; a well-formed postcode that the lookup does not know stays a
// warning.
func (v *Validator) checkPostcode(ctx context.Context, f *appeal.Findings, addr appeal.Address,
	personType string, a *appeal.Appellant, m Mode) bool {

	role := warningRole(personType, a)

	if addr.InMainlandUK == appeal.No && personType == person1 {
		if addr.PortOfEntry == "" {
			return false
		}
		if !refdata.ValidPortOfEntry(addr.PortOfEntry) {
			f.AddError(portOfEntryInvalid)
			return false
		}
		return true
	}

	if addr.Postcode != "" {
		if v.postcodes.ValidFormat(addr.Postcode) {
			if !v.postcodes.Exists(ctx, addr.Postcode) {
				f.AddWarning(fieldName(m, personType, role, "postcode") + " " + notValidPostcode)
				return false
			}
			return true
		}
		f.AddError(fieldName(m, personType, role, "postcode") + " is not in a valid format")
		return false
	}
	f.AddWarning(fieldName(m, personType, role, "postcode") + " " + isEmpty)
	return false
}

func (v *Validator) checkNino(f *appeal.Findings, a *appeal.Appellant, personType string, m Mode) {
	role := warningRole(personType, a)
	if a.Identity.Nino != "" {
		if !ValidNino(a.Identity.Nino) {
			f.AddWarning(fieldName(m, personType, role, "nino") + " " + isInvalid)
		}
	} else {
		f.AddWarning(fieldName(m, personType, role, "nino") + " " + isEmpty)
	}
}

func (v *Validator) checkIbcaReference(f *appeal.Findings, a *appeal.Appellant, personType string, m Mode) {
	role := warningRole(personType, a)
	ref := strings.ReplaceAll(a.Identity.IbcaReference, " ", "")
	if ref != "" {
		if !ibcaRefRe.MatchString(ref) {
			f.AddWarning(fieldName(m, personType, role, "ibca_reference") + " " + isInvalid)
		}
	} else {
		f.AddWarning(fieldName(m, personType, role, "ibca_reference") + " " + isEmpty)
	}
}

func (v *Validator) checkIbcRole(f *appeal.Findings, acc *ocr.Accessor, a *appeal.Appellant,
	personType string, validateIbcRoleField bool) {

	if !validateIbcRoleField && personType == person1 && acc != nil {
		var ticked []string
		for _, indicator := range forms.IbcRoleIndicators {
			if acc.BoolWarn(f, indicator) {
				ticked = append(ticked, indicator)
			}
		}
		if len(ticked) > 1 {
			f.AddError(strings.Join(ticked, ", ") + " cannot all be True")
		} else if len(ticked) == 0 {
			f.AddError("One of the following must be True: " + strings.Join(forms.IbcRoleIndicators, ", "))
		}
	}
	if validateIbcRoleField && a.IbcRole == "" {
		f.AddError("ibc_role " + isEmpty)
	}
}

func (v *Validator) checkAppealReasons(f *appeal.Findings, acc *ocr.Accessor, ap *appeal.Appeal, m Mode) {
	if ap.AppealReasons.IsEmpty() {
		f.AddWarning(fieldName(m, "", "", "appeal_grounds") + " " + isEmpty)
		return
	}
	if acc != nil && !acc.IsEmpty() {
		if !acc.Has("appeal_grounds") && !acc.Has("appeal_grounds_2") {
			f.AddWarning(fieldName(m, "", "", "appeal_grounds") + " " + isMissing)
		}
	}
}

func (v *Validator) checkAppellantRole(f *appeal.Findings, role *appeal.Role, opts Options) {
	if opts.IgnoreWarnings {
		return
	}
	if role == nil || role.Name == "" {
		f.AddWarning("Appellant role " + isMissing)
		return
	}
	if strings.EqualFold(role.Name, "Other") && role.Description == "" {
		f.AddWarning("Appellant role description " + isMissing)
	}
}

func (v *Validator) checkHearingSubtypeDetails(f *appeal.Findings, hs *appeal.HearingSubtype, m Mode) {
	if hs == nil {
		return
	}
	if hs.WantsHearingTypeTelephone == appeal.Yes && hs.HearingTelephoneNumber == "" {
		f.AddWarning(fieldName(m, "", "", "hearing_type_telephone") +
			" has been selected but no telephone number has been provided")
	} else if hs.HearingTelephoneNumber != "" && !ukNumberRe.MatchString(hs.HearingTelephoneNumber) {
		f.AddWarning("Telephone hearing selected but the number used is invalid, " +
			"please check either the hearing_telephone_number or person1_phone fields")
	}
	if hs.WantsHearingTypeVideo == appeal.Yes && hs.HearingVideoEmail == "" {
		f.AddWarning(fieldName(m, "", "", "hearing_type_video") +
			" has been selected but no email address has been provided")
	}
}

func (v *Validator) checkRepresentative(ctx context.Context, f *appeal.Findings, acc *ocr.Accessor,
	c *appeal.Case, opts Options, isIbc bool) {

	ap := c.Appeal
	if ap.Rep == nil || ap.Rep.HasRepresentative == "" {
		f.AddError(hasRepresentativeMissing)
	}
	if ap.Rep == nil || ap.Rep.HasRepresentative != appeal.Yes {
		return
	}
	m := opts.Mode

	v.checkPersonAddressAndDob(ctx, f, acc, c, ap.Rep.Address, nil, repType, ap.Appellant, isIbc, m)

	if !refdata.ValidTitle(ap.Rep.Name.Title) && ap.Rep.Name.Title != "" {
		f.AddWarning(fieldName(m, repType, roleRep, "title") + " " + isInvalid)
	}
	if ap.Rep.Name.FirstName == "" && ap.Rep.Name.LastName == "" && ap.Rep.Organisation == "" {
		f.AddWarning(repNameOrOrganisation(m) + " " + areEmpty)
	}
	v.checkMobile(f, ap.Rep.Contact, repType, c.Appeal.Appellant, m)
}

func repNameOrOrganisation(m Mode) string {
	if m == ModeIntake {
		return "representative_company, representative_first_name and representative_last_name"
	}
	return "Representative organisation, representative first name and representative last name"
}

func (v *Validator) checkChildMaintenance(f *appeal.Findings, c *appeal.Case, opts Options) {
	if opts.IgnoreWarnings {
		c.ChildMaintenanceNumber = ""
		return
	}
	if c.ChildMaintenanceNumber == "" {
		f.AddWarning(fieldName(opts.Mode, person1, "", "child_maintenance_number") + " " + isEmpty)
	}
}

func (v *Validator) checkOtherParty(f *appeal.Findings, c *appeal.Case, opts Options) {
	if len(c.OtherParties) == 0 {
		return
	}
	party := &c.OtherParties[0]
	m := opts.Mode

	if opts.IgnoreWarnings {
		if party.Name.FirstName == "" || party.Name.LastName == "" {
			c.OtherParties = nil
		} else if party.Address == nil || party.Address.Line1 == "" || party.Address.Town == "" || party.Address.Postcode == "" {
			party.Address = nil
		}
		return
	}

	if party.Name.Title != "" && !refdata.ValidTitle(party.Name.Title) {
		f.AddWarning(fieldName(m, otherParty, roleOtherParty, "title") + " " + isInvalid)
	}

	hasName := party.Name.FirstName != "" || party.Name.LastName != ""
	if hasName {
		if party.Name.FirstName == "" {
			f.AddWarning(fieldName(m, otherParty, roleOtherParty, "first_name") + " " + isEmpty)
		}
		if party.Name.LastName == "" {
			f.AddWarning(fieldName(m, otherParty, roleOtherParty, "last_name") + " " + isEmpty)
		}
	}

	addr := party.Address
	hasAddress := addr != nil && (addr.Line1 != "" || addr.Town != "" || addr.Postcode != "")
	if hasAddress {
		if addr.Line1 == "" {
			f.AddWarning(fieldName(m, otherParty, roleOtherParty, "address_line1") + " " + isEmpty)
		}
		if addr.Town == "" {
			f.AddWarning(fieldName(m, otherParty, roleOtherParty, "address_line2") + " " + isEmpty)
		}
		if addr.Postcode == "" {
			f.AddWarning(fieldName(m, otherParty, roleOtherParty, "postcode") + " " + isEmpty)
		}
	}
}

func (v *Validator) checkMrnDetails(f *appeal.Findings, acc *ocr.Accessor, ap *appeal.Appeal,
	formType appeal.FormType, opts Options) {

	m := opts.Mode
	office := ""
	if ap.MrnDetails != nil && ap.MrnDetails.DwpIssuingOffice != "" {
		office = ap.MrnDetails.DwpIssuingOffice
	} else if acc != nil && !acc.IsEmpty() {
		office = acc.Field("office")
	}

	mrnDate := ""
	if ap.MrnDetails != nil {
		mrnDate = ap.MrnDetails.MrnDate
	}
	if !opts.IgnoreMrn && mrnDate == "" {
		f.AddWarning(fieldName(m, "", "", "mrn_date") + " " + isEmpty)
	} else if !opts.IgnoreMrn {
		v.checkDate(f, mrnDate, fieldName(m, "", "", "mrn_date"), true)
	}

	benefitCode := ""
	if ap.BenefitType != nil {
		benefitCode = ap.BenefitType.Code
	}

	if office != "" && benefitCode != "" {
		found := false
		if !v.ucOfficeActive && benefitCode == appeal.BenefitUC {
			_, found = refdata.DefaultOfficeFor(appeal.BenefitUC)
		} else {
			_, found = refdata.OfficeFor(benefitCode, office)
		}
		if !found {
			v.log.Info().Str("office", office).Str("benefit", benefitCode).Msg("issuing office is not valid")
			f.AddWarning(fieldName(m, "", "", "office") + " " + isInvalid)
		}
	} else if office == "" &&
		formType != appeal.FormSscs2 && formType != appeal.FormSscs5 && formType != appeal.FormSscs8 {
		f.AddWarning(fieldName(m, "", "", "office") + " " + isEmpty)
	}
}

func (v *Validator) checkExcludeDates(f *appeal.Findings, ap *appeal.Appeal, m Mode) {
	if ap.HearingOptions == nil {
		return
	}
	for _, ed := range ap.HearingOptions.ExcludeDates {
		v.checkDate(f, ed.Value.Start, fieldName(m, "", "", "hearing_options_exclude_dates"), false)
	}
}

// checkBenefitType rejects unknown codes outright and normalises known
// ones onto the appeal. An absent benefit is filled in on IBC forms and
// flagged on forms that always state one.
func (v *Validator) checkBenefitType(f *appeal.Findings, ap *appeal.Appeal, formType appeal.FormType, m Mode) {
	if ap.BenefitType != nil && ap.BenefitType.Code != "" {
		b := appeal.BenefitByCode(ap.BenefitType.Code)
		if b == nil {
			f.AddError(fieldName(m, "", "", "benefit_type_description") +
				" invalid. Should be one of: " + strings.Join(appeal.BenefitCodes(), ", "))
			return
		}
		ap.BenefitType = &appeal.BenefitType{Code: b.Code, Description: b.Description}
		return
	}
	if formType == appeal.FormSscs8 {
		b := appeal.BenefitByCode(appeal.BenefitInfectedBlood)
		ap.BenefitType = &appeal.BenefitType{Code: b.Code, Description: b.Description}
	}
	if formType != appeal.FormSscs1U && formType != appeal.FormSscs5 && formType != appeal.FormSscs8 {
		f.AddWarning(fieldName(m, "", "", "benefit_type_description") + " " + isEmpty)
	}
}

func (v *Validator) checkHearingType(f *appeal.Findings, ap *appeal.Appeal, m Mode) {
	if ap.HearingType != appeal.HearingTypeOral && ap.HearingType != appeal.HearingTypePaper {
		f.AddWarning(fieldName(m, "", "", "is_hearing_type_oral and is_hearing_type_paper") + " " + isInvalid)
	}
}

func (v *Validator) checkHearingSubtypeForOral(f *appeal.Findings, ap *appeal.Appeal, formType appeal.FormType, m Mode) {
	switch formType {
	case appeal.FormSscs1PEU, appeal.FormSscs2, appeal.FormSscs5, appeal.FormSscs8:
	default:
		return
	}
	if ap.HearingType != appeal.HearingTypeOral {
		return
	}
	if ap.HearingSubtype == nil || !ap.HearingSubtype.WantsAnyAttendanceMethod() {
		f.AddWarning(fieldName(m, "", "", "hearing_type_telephone, hearing_type_video and hearing_type_face_to_face") +
			" " + areEmpty)
	}
}

func (v *Validator) checkDocuments(f *appeal.Findings, docs []appeal.Document) {
	for _, d := range docs {
		if d.FileName == "" {
			f.AddError("There is a file attached to the case that does not have a filename, " +
				"add a filename, e.g. filename.pdf")
			continue
		}
		if !strings.Contains(d.FileName, ".") {
			f.AddError("There is a file attached to the case called " + d.FileName +
				", filenames must have extension, e.g. filename.pdf")
		}
	}
}

func (v *Validator) checkMobile(f *appeal.Findings, contact appeal.Contact, personType string, a *appeal.Appellant, m Mode) {
	if contact.Mobile != "" && !phoneRe.MatchString(contact.Mobile) {
		f.AddError(fieldName(m, personType, warningRole(personType, a), "mobile") + " " + isInvalid)
	}
}

func (v *Validator) checkDate(f *appeal.Findings, date, name string, futureCheck bool) {
	if date == "" {
		return
	}
	t, ok := ocr.ParseCaseDate(date)
	if !ok {
		v.log.Error().Str("field", name).Str("value", date).Msg("unparseable case date")
		return
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if futureCheck && t.After(today) {
		f.AddWarning(name + " " + isInFuture)
	} else if !futureCheck && t.Before(today) {
		f.AddWarning(name + " " + isInPast)
	}
}
