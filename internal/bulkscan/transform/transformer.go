// Package transform turns a scanned payload into a structured tribunal
// case, accumulating errors and warnings for everything the OCR data gets
// wrong.
package transform

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/benefit"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/forms"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/ocr"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/casestore"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/refdata"
)

const (
	person1 = "person1"
	person2 = "person2"
	rep     = "representative"
	other   = "other_party"

	fieldMrnDate          = "mrn_date"
	fieldAppealLateReason = "appeal_late_reason"
	fieldOffice           = "office"
	fieldAppealGrounds    = "appeal_grounds"
	fieldSignatureName    = "signature_name"
	fieldKeepConfidential = "keep_home_address_confidential"
	fieldHearingOral      = "is_hearing_type_oral"
	fieldHearingPaper     = "is_hearing_type_paper"
	fieldAgreeLessNotice  = "agree_less_hearing_notice"
	fieldTellAboutDates   = "tell_tribunal_about_dates"
	fieldExcludeDates     = "hearing_options_exclude_dates"
	fieldHearingLoop      = "hearing_options_hearing_loop"
	fieldAccessibleRooms  = "hearing_options_accessible_hearing_rooms"
	fieldSignInterpreter  = "hearing_options_sign_language_interpreter"
	fieldSignLanguage     = "hearing_options_sign_language_type"
	fieldLanguageType     = "hearing_options_language_type"
	fieldDialect          = "hearing_options_dialect"
	fieldSubTelephone     = "hearing_type_telephone"
	fieldSubTelNumber     = "hearing_telephone_number"
	fieldSubVideo         = "hearing_type_video"
	fieldSubVideoEmail    = "hearing_video_email"
	fieldSubFaceToFace    = "hearing_type_face_to_face"
	fieldChildMaintenance = "person1_child_maintenance_number"
	fieldOtherPartyDetail = "other_party_details"
	fieldOtherAddrKnown   = "is_other_party_address_known"

	defaultSignLanguage = "British Sign Language"

	excludeDatesError = "hearing_options_exclude_dates contains an invalid date range. " +
		"Should be single dates separated by commas and/or a date range " +
		"e.g. 01/01/2020, 07/01/2020, 12/01/2020 - 15/01/2020"

	// Raised when the form says there are dates to avoid but none were given.
	excludeDatesMissingWarning = "No excluded dates provided but data indicates that there are dates customer " +
		"cannot attend hearing as tell_tribunal_about_dates is true. Is this correct?"

	duplicateCaseError = "Duplicate case already exists - please reject this exception record"
	noOcrDataError     = "No OCR data, case cannot be created"
)

// Options carries the feature switches the transformer honours.
type Options struct {
	// UCOfficeActive keeps the office written on the form for universal
	// credit appeals instead of forcing the default office.
	UCOfficeActive bool
}

type Transformer struct {
	resolver *benefit.Resolver
	store    casestore.Store
	opts     Options
	log      zerolog.Logger
}

func New(resolver *benefit.Resolver, store casestore.Store, opts Options, log zerolog.Logger) *Transformer {
	return &Transformer{
		resolver: resolver,
		store:    store,
		opts:     opts,
		log:      log.With().Str("component", "transform").Logger(),
	}
}

// Transform builds a case from the payload. The schema gate runs first
// and short-circuits everything else; combineWarnings demotes every error
// to a warning at the end, which the pre-validation endpoint uses.
func (t *Transformer) Transform(ctx context.Context, payload *ocr.ScanPayload, combineWarnings bool) appeal.CaseResponse {
	caseID := payload.ID
	f := appeal.NewFindings()

	fieldMap := payload.FieldMap()
	acc := ocr.NewAccessor(fieldMap)
	formType, formTypeUpdated := forms.Classify(acc.Field("form_type"), payload.FormType)

	t.log.Info().Str("case_id", caseID).Str("form_type", string(formType)).
		Msg("validating scanned payload against form schema")

	forms.ValidateSchema(f, formType, payload.RawMap())
	if f.HasErrors() {
		t.log.Info().Str("case_id", caseID).Strs("errors", f.Errors()).
			Msg("schema violations found, not transforming")
		return f.Response(nil)
	}

	c := t.buildCase(ctx, f, acc, payload, formType, formTypeUpdated, caseID)

	t.duplicateCheck(ctx, f, c, caseID)

	if combineWarnings {
		f.Combine()
	}
	return f.Response(c)
}

func (t *Transformer) buildCase(ctx context.Context, f *appeal.Findings, acc *ocr.Accessor,
	payload *ocr.ScanPayload, formType appeal.FormType, formTypeUpdated bool, caseID string) *appeal.Case {

	isSscs8 := formType == appeal.FormSscs8
	ap := t.buildAppeal(f, acc, formType, payload.IgnoreWarnings, caseID)

	c := &appeal.Case{
		Appeal:                ap,
		Documents:             t.buildDocuments(f, payload.Records, formTypeUpdated, payload.FormType, formType),
		Subscriptions:         t.buildSubscriptions(f, acc, ap),
		FormType:              formType,
		BulkScanCaseReference: caseID,
		CaseCreated:           payload.OpeningDate,
	}
	c.EvidencePresent = evidencePresent(payload.Records)
	if ap.Appellant != nil {
		c.IsConfidentialCase = confidentialCase(formType, ap.Appellant.ConfidentialityRequired)
	}
	if formType == appeal.FormSscs2 {
		c.ChildMaintenanceNumber = acc.Field(fieldChildMaintenance)
		c.OtherParties = t.buildOtherParties(f, acc, isSscs8)
	}

	t.annotateVenue(c, caseID)
	t.linkAssociatedCases(ctx, c)
	return c
}

func (t *Transformer) buildAppeal(f *appeal.Findings, acc *ocr.Accessor, formType appeal.FormType,
	ignoreWarnings bool, caseID string) *appeal.Appeal {

	if acc.IsEmpty() {
		t.log.Info().Str("case_id", caseID).Msg(noOcrDataError)
		f.AddError(noOcrDataError)
		return &appeal.Appeal{}
	}
	isSscs8 := formType == appeal.FormSscs8

	var appellant *appeal.Appellant
	if acc.HasPerson(person2) {
		var appointee *appeal.Appointee
		if acc.HasPerson(person1) {
			appointee = &appeal.Appointee{
				Name:     t.buildName(acc, person1),
				Address:  buildAddress(acc, person1, isSscs8),
				Contact:  buildContact(acc, person1),
				Identity: buildIdentity(f, acc, person1),
			}
		}
		appellant = t.buildAppellant(f, acc, person2, appointee, formType, ignoreWarnings, isSscs8)
	} else if acc.HasPerson(person1) {
		appellant = t.buildAppellant(f, acc, person1, nil, formType, ignoreWarnings, isSscs8)
	}

	hearingType := findHearingType(f, acc)
	benefitType := t.resolver.Resolve(f, acc, formType, caseID)

	return &appeal.Appeal{
		BenefitType:    benefitType,
		Appellant:      appellant,
		AppealReasons:  findAppealReasons(acc),
		Rep:            t.buildRepresentative(acc, isSscs8),
		MrnDetails:     t.buildMrnDetails(f, acc, benefitType),
		HearingType:    hearingType,
		HearingOptions: t.buildHearingOptions(f, acc, hearingType),
		HearingSubtype: buildHearingSubtype(f, acc),
		Signer:         acc.Field(fieldSignatureName),
		ReceivedVia:    "Paper",
	}
}

func (t *Transformer) buildAppellant(f *appeal.Findings, acc *ocr.Accessor, personType string,
	appointee *appeal.Appointee, formType appeal.FormType, ignoreWarnings, isSscs8 bool) *appeal.Appellant {

	a := &appeal.Appellant{
		Name:        t.buildName(acc, personType),
		Address:     buildAddress(acc, personType, isSscs8),
		Contact:     buildContact(acc, personType),
		Identity:    buildIdentity(f, acc, personType),
		IsAppointee: appeal.YesNo(appointee != nil && !appointee.IsEmpty()),
		Appointee:   appointee,
	}
	if acc.Has(fieldKeepConfidential) {
		a.ConfidentialityRequired = acc.YesNoField(f, fieldKeepConfidential)
	}
	if formType == appeal.FormSscs2 {
		a.Role = t.buildAppellantRole(f, acc, ignoreWarnings)
	}
	if isSscs8 && personType == person1 {
		a.IbcRole = buildIbcRole(f, acc)
	}
	return a
}

var ibcRoleValues = map[string]string{
	"ibc_role_for_self":             "myself",
	"ibc_role_for_u18":              "parent",
	"ibc_role_for_lacking_capacity": "guardian",
	"ibc_role_for_poa":              "powerOfAttorney",
	"ibc_role_for_deceased":         "deceasedRepresentative",
}

func buildIbcRole(f *appeal.Findings, acc *ocr.Accessor) string {
	for _, indicator := range forms.IbcRoleIndicators {
		if acc.BoolWarn(f, indicator) {
			return ibcRoleValues[indicator]
		}
	}
	return ""
}

const (
	rolePayingParent    = "Paying parent"
	roleReceivingParent = "Receiving parent"
	roleOther           = "Other"
)

var appellantRoleNames = map[string]string{
	"is_paying_parent":    rolePayingParent,
	"is_receiving_parent": roleReceivingParent,
	"is_another_party":    roleOther,
}

// buildAppellantRole works out on whose behalf a child-support appeal is
// brought. Conflicting or missing indicators surface as warnings unless
// the caller asked for warnings to be suppressed.
func (t *Transformer) buildAppellantRole(f *appeal.Findings, acc *ocr.Accessor, ignoreWarnings bool) *appeal.Role {
	valid := acc.ValidBools(f, presentOf(acc, forms.AppellantRoleIndicators))
	ticked := acc.TrueOf(valid)
	details := acc.Field(fieldOtherPartyDetail)

	warn := func(msg string) {
		if !ignoreWarnings {
			f.AddWarning(msg)
		}
	}

	if len(ticked) == 0 && details == "" {
		warn(benefit.GrammaticalJoin(append(append([]string{}, forms.AppellantRoleIndicators...), fieldOtherPartyDetail)) +
			" fields are empty")
		return nil
	}
	if len(ticked) > 1 {
		fields := ticked
		if details != "" {
			fields = append(fields, fieldOtherPartyDetail)
		}
		warn(benefit.GrammaticalJoin(fields) + " have conflicting values")
		return nil
	}
	if len(ticked) == 1 {
		name := appellantRoleNames[ticked[0]]
		if name == roleOther && details == "" {
			warn(fieldOtherPartyDetail + " fields are empty")
			return nil
		}
		if name != roleOther && details != "" {
			warn(benefit.GrammaticalJoin([]string{ticked[0], fieldOtherPartyDetail}) + " have conflicting values")
			return nil
		}
		if name == roleOther {
			return &appeal.Role{Name: roleOther, Description: details}
		}
		return &appeal.Role{Name: name}
	}
	return &appeal.Role{Name: roleOther, Description: details}
}

func (t *Transformer) buildName(acc *ocr.Accessor, personType string) appeal.Name {
	return appeal.Name{
		Title:     transformTitle(acc.Field(personType + "_title")),
		FirstName: acc.Field(personType + "_first_name"),
		LastName:  acc.Field(personType + "_last_name"),
	}
}

func transformTitle(title string) string {
	switch strings.ToLower(title) {
	case "doctor":
		return "Dr"
	case "reverend":
		return "Rev"
	}
	return title
}

// buildAddress probes the filled address lines to decide the layout. The
// overseas layout keys off line3 and the port of entry; on domestic forms
// a filled line4 means the county was written, otherwise a missing line3
// gets the "." placeholder county.
func buildAddress(acc *ocr.Accessor, personType string, isSscs8 bool) appeal.Address {
	field := func(suffix string) string { return acc.Field(personType + suffix) }

	if isSscs8 {
		hasPort := field("_port_of_entry") != ""
		hasLine3 := field("_address_line3") != ""
		town := field("_address_line2")
		line2 := ""
		if hasLine3 {
			line2 = field("_address_line2")
			town = field("_address_line3")
		}
		return appeal.Address{
			Line1:        field("_address_line1"),
			Line2:        line2,
			Town:         town,
			Country:      field("_country"),
			PortOfEntry:  field("_port_of_entry"),
			Postcode:     field("_postcode"),
			InMainlandUK: appeal.YesNo(!hasPort),
		}
	}
	if field("_address_line4") != "" {
		return appeal.Address{
			Line1:    field("_address_line1"),
			Line2:    field("_address_line2"),
			Town:     field("_address_line3"),
			County:   field("_address_line4"),
			Postcode: field("_postcode"),
		}
	}
	county := field("_address_line3")
	if county == "" && field("_address_line2") != "" {
		county = "."
	}
	return appeal.Address{
		Line1:    field("_address_line1"),
		Town:     field("_address_line2"),
		County:   county,
		Postcode: field("_postcode"),
	}
}

func buildContact(acc *ocr.Accessor, personType string) appeal.Contact {
	return appeal.Contact{
		Phone:  acc.Field(personType + "_phone"),
		Mobile: acc.Field(personType + "_mobile"),
		Email:  acc.Field(personType + "_email"),
	}
}

func buildIdentity(f *appeal.Findings, acc *ocr.Accessor, personType string) appeal.Identity {
	return appeal.Identity{
		DOB:           acc.Date(f, personType+"_dob"),
		Nino:          appeal.NormaliseNino(acc.Field(personType + "_nino")),
		IbcaReference: acc.Field(personType + "_ibca_reference"),
	}
}

func (t *Transformer) buildRepresentative(acc *ocr.Accessor, isSscs8 bool) *appeal.Representative {
	if !acc.HasPerson(rep) {
		return &appeal.Representative{HasRepresentative: appeal.No}
	}
	return &appeal.Representative{
		HasRepresentative: appeal.Yes,
		Name:              t.buildName(acc, rep),
		Address:           buildAddress(acc, rep, isSscs8),
		Organisation:      acc.Field("representative_company"),
		Contact:           buildContact(acc, rep),
	}
}

func (t *Transformer) buildOtherParties(f *appeal.Findings, acc *ocr.Accessor, isSscs8 bool) []appeal.OtherParty {
	if !acc.HasPerson(other) {
		return nil
	}
	party := appeal.OtherParty{
		ID:   "1",
		Name: t.buildName(acc, other),
	}
	if acc.Bool(f, fieldOtherAddrKnown) || acc.HasAddress(other) {
		addr := buildAddress(acc, other, isSscs8)
		party.Address = &addr
	}
	return []appeal.OtherParty{party}
}

func (t *Transformer) buildMrnDetails(f *appeal.Findings, acc *ocr.Accessor, bt *appeal.BenefitType) *appeal.MrnDetails {
	return &appeal.MrnDetails{
		MrnDate:          acc.Date(f, fieldMrnDate),
		MrnLateReason:    acc.Field(fieldAppealLateReason),
		DwpIssuingOffice: t.resolveIssuingOffice(acc, bt),
	}
}

// resolveIssuingOffice maps the office written on the form to its case
// value. Benefits that route to a single office ignore the form; infected
// blood compensation always routes to the IBCA office.
func (t *Transformer) resolveIssuingOffice(acc *ocr.Accessor, bt *appeal.BenefitType) string {
	office := acc.Field(fieldOffice)
	if bt == nil || bt.Code == "" {
		return office
	}
	if bt.Code == appeal.BenefitInfectedBlood {
		return refdata.IbcaOffice
	}
	if t.autoFilledOffice(bt.Code, office) {
		if m, ok := refdata.DefaultOfficeFor(bt.Code); ok {
			return m.Code
		}
		return ""
	}
	if office != "" {
		if m, ok := refdata.OfficeFor(bt.Code, office); ok {
			return m.CaseValue
		}
		return ""
	}
	return office
}

func (t *Transformer) autoFilledOffice(benefitCode, office string) bool {
	if benefitCode == appeal.BenefitUC && t.opts.UCOfficeActive && strings.TrimSpace(office) != "" {
		return false
	}
	b := appeal.BenefitByCode(benefitCode)
	return b != nil && b.AutoOffice
}

func findAppealReasons(acc *ocr.Accessor) *appeal.AppealReasons {
	grounds := acc.Field(fieldAppealGrounds)
	if grounds == "" {
		grounds = acc.Field(fieldAppealGrounds + "_2")
	}
	if grounds == "" {
		return nil
	}
	return &appeal.AppealReasons{
		Reasons: []appeal.AppealReason{{Description: grounds}},
	}
}

// findHearingType infers a missing oral/paper checkbox as the negation of
// the other. A contradiction leaves the hearing type unset.
func findHearingType(f *appeal.Findings, acc *ocr.Accessor) string {
	oralOK := acc.CheckBool(f, fieldHearingOral)
	paperOK := acc.CheckBool(f, fieldHearingPaper)

	oralSet, paperSet := acc.Has(fieldHearingOral), acc.Has(fieldHearingPaper)
	oral := oralOK && ocr.ParseBool3(acc.Field(fieldHearingOral)) == ocr.BoolTrue
	paper := paperOK && ocr.ParseBool3(acc.Field(fieldHearingPaper)) == ocr.BoolTrue

	switch {
	case oralOK && oralSet && !paperSet:
		paper = !oral
		paperSet, paperOK = true, true
	case paperOK && paperSet && !oralSet:
		oral = !paper
		oralSet, oralOK = true, true
	}

	if oralOK && paperOK && oralSet && paperSet && oral != paper {
		if oral {
			return appeal.HearingTypeOral
		}
		return appeal.HearingTypePaper
	}
	return ""
}

func (t *Transformer) buildHearingOptions(f *appeal.Findings, acc *ocr.Accessor, hearingType string) *appeal.HearingOptions {
	signInterpreter := findSignLanguageInterpreter(acc)
	signLanguageType := ""
	if signInterpreter {
		signLanguageType = acc.Field(fieldSignLanguage)
		if signLanguageType == "" {
			signLanguageType = defaultSignLanguage
		}
	}

	languageInterpreter := acc.Has(fieldLanguageType) || acc.Has(fieldDialect)
	languageType := ""
	if languageInterpreter {
		languageType = strings.TrimSpace(acc.Field(fieldLanguageType) + " " + acc.Field(fieldDialect))
	}

	wantsToAttend := appeal.YesNo(hearingType == appeal.HearingTypeOral)

	var arrangements []string
	if acc.Has(fieldAccessibleRooms) && acc.Bool(f, fieldAccessibleRooms) {
		arrangements = append(arrangements, "disabledAccess")
	}
	if acc.Has(fieldHearingLoop) && acc.Bool(f, fieldHearingLoop) {
		arrangements = append(arrangements, "hearingLoop")
	}
	if signInterpreter {
		arrangements = append(arrangements, "signLanguageInterpreter")
	}

	excludeDates := extractExcludeDates(f, acc)

	agreeLessNotice := ""
	if acc.Has(fieldAgreeLessNotice) {
		agreeLessNotice = acc.YesNoField(f, fieldAgreeLessNotice)
	}

	return &appeal.HearingOptions{
		WantsToAttend:       wantsToAttend,
		WantsSupport:        appeal.YesNo(len(arrangements) > 0),
		AgreeLessNotice:     agreeLessNotice,
		ScheduleHearing:     appeal.YesNo(len(excludeDates) > 0 && wantsToAttend == appeal.Yes),
		ExcludeDates:        excludeDates,
		Arrangements:        arrangements,
		Other:               acc.Field("hearing_support_arrangements"),
		LanguageInterpreter: appeal.YesNo(languageInterpreter),
		Languages:           languageType,
		SignLanguageType:    signLanguageType,
	}
}

func findSignLanguageInterpreter(acc *ocr.Accessor) bool {
	if acc.Has(fieldSignInterpreter) {
		return ocr.ParseBool3(acc.Field(fieldSignInterpreter)) == ocr.BoolTrue
	}
	return acc.Has(fieldSignLanguage)
}

// extractExcludeDates parses the comma-separated unavailability list.
// Each entry is a single date or a two-ended range; anything with more
// than two ends poisons the whole list.
func extractExcludeDates(f *appeal.Findings, acc *ocr.Accessor) []appeal.ExcludeDate {
	raw := acc.Field(fieldExcludeDates)
	var out []appeal.ExcludeDate
	if raw != "" {
		for _, item := range strings.Split(raw, ",") {
			parts := strings.Split(strings.TrimSpace(item), "-")
			if len(parts) > 2 {
				f.AddError(excludeDatesError)
				return out
			}
			start := parseExcludeDate(f, parts[0])
			end := ""
			if len(parts) == 2 {
				end = parseExcludeDate(f, parts[1])
			}
			out = append(out, appeal.ExcludeDate{Value: appeal.DateRange{Start: start, End: end}})
		}
	}
	if len(out) == 0 {
		if acc.Has(fieldTellAboutDates) && acc.Bool(f, fieldTellAboutDates) {
			f.AddWarning(excludeDatesMissingWarning)
		}
		return nil
	}
	return out
}

func parseExcludeDate(f *appeal.Findings, raw string) string {
	raw = strings.TrimSpace(raw)
	t, ok := ocr.ParseOcrDate(raw)
	if !ok {
		f.AddError(excludeDatesError)
		return ""
	}
	return t
}

func buildHearingSubtype(f *appeal.Findings, acc *ocr.Accessor) *appeal.HearingSubtype {
	if !acc.HasAny(fieldSubTelephone, fieldSubTelNumber, fieldSubVideo, fieldSubVideoEmail, fieldSubFaceToFace) {
		return &appeal.HearingSubtype{}
	}
	telNumber := acc.Field(fieldSubTelNumber)
	if telNumber == "" {
		telNumber = acc.Field(person1 + "_mobile")
	}
	if telNumber == "" {
		telNumber = acc.Field(person1 + "_phone")
	}
	videoEmail := acc.Field(fieldSubVideoEmail)
	if videoEmail == "" {
		videoEmail = acc.Field(person1 + "_email")
	}
	return &appeal.HearingSubtype{
		WantsHearingTypeTelephone:  acc.YesNoField(f, fieldSubTelephone),
		HearingTelephoneNumber:     telNumber,
		WantsHearingTypeVideo:      acc.YesNoField(f, fieldSubVideo),
		HearingVideoEmail:          videoEmail,
		WantsHearingTypeFaceToFace: acc.YesNoField(f, fieldSubFaceToFace),
	}
}

func (t *Transformer) buildSubscriptions(f *appeal.Findings, acc *ocr.Accessor, ap *appeal.Appeal) appeal.Subscriptions {
	var subs appeal.Subscriptions
	if ap.Appellant != nil {
		sub := t.buildSubscription(f, acc, person1, true)
		if ap.Appellant.Appointee == nil {
			subs.Appellant = sub
		} else {
			subs.Appointee = sub
		}
	}
	if ap.Rep != nil && ap.Rep.HasRepresentative == appeal.Yes {
		subs.Representative = t.buildSubscription(f, acc, rep, true)
	}
	return subs
}

func (t *Transformer) buildSubscription(f *appeal.Findings, acc *ocr.Accessor, personType string, emailEligible bool) *appeal.Subscription {
	wantsSms := acc.Bool(f, personType+"_want_sms_notifications")
	email := acc.Field(personType + "_email")
	return &appeal.Subscription{
		Email:                email,
		Mobile:               acc.Field(personType + "_mobile"),
		SubscribeSms:         appeal.YesNo(wantsSms),
		SubscribeEmail:       appeal.YesNo(emailEligible && email != ""),
		WantSmsNotifications: appeal.YesNo(wantsSms),
		Tya:                  generateAppealNumber(),
	}
}

// generateAppealNumber issues the track-your-appeal token for a party.
func generateAppealNumber() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
}

var allowedExtensions = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {}, ".jpg": {}, ".jpeg": {},
	".png": {}, ".bmp": {}, ".tif": {}, ".tiff": {}, ".txt": {},
}

func (t *Transformer) buildDocuments(f *appeal.Findings, records []ocr.ScannedRecord,
	formTypeUpdated bool, orgFormType string, newFormType appeal.FormType) []appeal.Document {

	var docs []appeal.Document
	for _, rec := range records {
		subtype := rec.Subtype
		if formTypeUpdated && rec.Type == "Form" &&
			((rec.Subtype == "" && orgFormType == "") || (orgFormType != "" && orgFormType == rec.Subtype)) {
			subtype = string(newFormType)
		}

		if rec.FileName == "" {
			f.AddError("File name field must not be empty")
		} else if _, ok := allowedExtensions[strings.ToLower(filepath.Ext(rec.FileName))]; !ok {
			f.AddError("File name '" + rec.FileName + "' has an invalid file extension")
		}

		scannedDate := rec.ScannedDate
		if len(scannedDate) > 10 {
			scannedDate = scannedDate[:10]
		}
		docs = append(docs, appeal.Document{
			URL:          rec.URL,
			DateAdded:    scannedDate,
			FileName:     rec.FileName,
			DocumentType: documentType(subtype),
		})
	}
	return docs
}

func documentType(formType string) string {
	lower := strings.ToLower(formType)
	switch {
	case strings.HasPrefix(lower, "sscs1"):
		return "sscs1"
	case strings.HasPrefix(lower, "sscs2"):
		return "sscs2"
	case strings.HasPrefix(lower, "sscs5"):
		return "sscs5"
	}
	return "appellantEvidence"
}

func evidencePresent(records []ocr.ScannedRecord) string {
	for _, rec := range records {
		if !strings.EqualFold(rec.Type, "Form") {
			return appeal.Yes
		}
	}
	return appeal.No
}

func confidentialCase(formType appeal.FormType, required string) string {
	if required == appeal.Yes && (formType == appeal.FormSscs2 || formType == appeal.FormSscs5) {
		return appeal.Yes
	}
	return ""
}

// annotateVenue sets the processing venue and case management location
// from the appellant's postcode, or port of entry on IBC cases.
func (t *Transformer) annotateVenue(c *appeal.Case, caseID string) {
	postcodeOrPort := ResolvePostcodeOrPort(c.Appeal)
	if postcodeOrPort == "" {
		return
	}
	ibc := isIbcAppeal(c.Appeal)
	venue, ok := refdata.VenueFor(postcodeOrPort, c.BenefitCodeValue(), ibc)
	if !ok {
		return
	}
	t.log.Info().Str("case_id", caseID).Str("venue", venue.Name).Msg("setting processing venue")
	c.ProcessingVenue = venue.Name
	c.Region = venue.Region
	c.CaseManagementLocation = &appeal.CaseManagementLocation{
		Region:       venue.RegionalCode,
		BaseLocation: venue.EpimsID,
	}
}

// ResolvePostcodeOrPort picks the location value venue lookups key on:
// the appointee's postcode when one manages the appeal, the port of entry
// for overseas appellants, otherwise the appellant's own postcode.
func ResolvePostcodeOrPort(ap *appeal.Appeal) string {
	if ap == nil || ap.Appellant == nil {
		return ""
	}
	a := ap.Appellant
	if a.Appointee != nil && !a.Appointee.IsEmpty() && a.Appointee.Address.Postcode != "" {
		return a.Appointee.Address.Postcode
	}
	if a.Address.PortOfEntry != "" {
		return a.Address.PortOfEntry
	}
	return a.Address.Postcode
}

func isIbcAppeal(ap *appeal.Appeal) bool {
	if ap == nil || ap.BenefitType == nil {
		return false
	}
	if ap.BenefitType.Code == appeal.BenefitInfectedBlood {
		return true
	}
	b := appeal.BenefitByCode(appeal.BenefitInfectedBlood)
	return b != nil && strings.EqualFold(ap.BenefitType.Description, b.Description)
}

// linkAssociatedCases looks up existing cases for the appellant and links
// them onto the new case.
func (t *Transformer) linkAssociatedCases(ctx context.Context, c *appeal.Case) {
	nino := c.Nino()
	if nino == "" {
		c.LinkedCasesBoolean = appeal.No
		return
	}
	matches, err := t.store.FindByNino(ctx, nino)
	if err != nil {
		t.log.Warn().Err(err).Msg("associated case lookup failed")
		c.LinkedCasesBoolean = appeal.No
		return
	}
	for _, m := range matches {
		c.AssociatedCases = append(c.AssociatedCases, appeal.CaseLink{CaseReference: m.CaseRef})
		t.log.Info().Str("case_ref", m.CaseRef).Msg("added associated case")
	}
	c.LinkedCasesBoolean = appeal.YesNo(len(c.AssociatedCases) > 0)
}

func (t *Transformer) duplicateCheck(ctx context.Context, f *appeal.Findings, c *appeal.Case, caseID string) {
	if c == nil {
		return
	}
	nino, benefitCode, mrnDate := c.Nino(), c.BenefitCodeValue(), c.MrnDate()
	if nino == "" || benefitCode == "" || mrnDate == "" {
		return
	}
	match, err := t.store.FindExactMatch(ctx, nino, benefitCode, mrnDate)
	if err != nil {
		t.log.Warn().Err(err).Str("case_id", caseID).Msg("duplicate case lookup failed")
		return
	}
	if match != nil {
		t.log.Info().Str("case_id", caseID).Str("existing", match.CaseRef).
			Msg("duplicate case already exists")
		f.AddError(duplicateCaseError)
	}
}

func presentOf(acc *ocr.Accessor, names []string) []string {
	var out []string
	for _, n := range names {
		if acc.Has(n) {
			out = append(out, n)
		}
	}
	return out
}
