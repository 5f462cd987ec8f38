package appeal

import "strings"

// FormType identifies the paper-form layout a scanned payload came from.
// Unknown is a terminal value, not an error by itself.
type FormType string

const (
	FormSscs1    FormType = "sscs1"
	FormSscs1PE  FormType = "sscs1pe"
	FormSscs1PEU FormType = "sscs1peu"
	FormSscs1U   FormType = "sscs1u"
	FormSscs2    FormType = "sscs2"
	FormSscs5    FormType = "sscs5"
	FormSscs8    FormType = "sscs8"
	FormUnknown  FormType = "unknown"
)

// ParseFormType maps a raw form-type string to a known FormType, returning
// FormUnknown for anything unrecognized.
func ParseFormType(s string) FormType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(FormSscs1):
		return FormSscs1
	case string(FormSscs1PE):
		return FormSscs1PE
	case string(FormSscs1PEU):
		return FormSscs1PEU
	case string(FormSscs1U):
		return FormSscs1U
	case string(FormSscs2):
		return FormSscs2
	case string(FormSscs5):
		return FormSscs5
	case string(FormSscs8):
		return FormSscs8
	}
	return FormUnknown
}

const (
	Yes = "Yes"
	No  = "No"
)

// YesNo converts a bool to the "Yes"/"No" literal used throughout the case
// record.
func YesNo(b bool) string {
	if b {
		return Yes
	}
	return No
}

type Name struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// FullNameNoTitle joins first and last name, skipping blanks.
func (n Name) FullNameNoTitle() string {
	parts := []string{}
	if n.FirstName != "" {
		parts = append(parts, n.FirstName)
	}
	if n.LastName != "" {
		parts = append(parts, n.LastName)
	}
	return strings.Join(parts, " ")
}

func (n Name) IsEmpty() bool {
	return n.Title == "" && n.FirstName == "" && n.LastName == ""
}

// Address supports three layouts: the 4-line UK layout with county, the
// 3-line layout where a missing county is defaulted to ".", and the
// overseas layout with a port of entry and no county.
type Address struct {
	Line1       string `json:"line1,omitempty"`
	Line2       string `json:"line2,omitempty"`
	Town        string `json:"town,omitempty"`
	County      string `json:"county,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	Country     string `json:"country,omitempty"`
	PortOfEntry string `json:"portOfEntry,omitempty"`
	// InMainlandUK is "Yes"/"No"; empty means not yet derived.
	InMainlandUK string `json:"inMainlandUk,omitempty"`
}

func (a Address) IsEmpty() bool {
	return a.Line1 == "" && a.Line2 == "" && a.Town == "" && a.County == "" && a.Postcode == ""
}

type Contact struct {
	Phone  string `json:"phone,omitempty"`
	Mobile string `json:"mobile,omitempty"`
	Email  string `json:"email,omitempty"`
}

func (c Contact) IsEmpty() bool {
	return c.Phone == "" && c.Mobile == "" && c.Email == ""
}

type Identity struct {
	DOB           string `json:"dob,omitempty"`
	Nino          string `json:"nino,omitempty"`
	IbcaReference string `json:"ibcaReference,omitempty"`
}

func (i Identity) IsEmpty() bool {
	return i.DOB == "" && i.Nino == ""
}

// Role records on whose behalf a child-support appellant is acting.
type Role struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Appointee manages the appeal on the appellant's behalf. It is an
// exclusive sub-record of the appellant, never shared.
type Appointee struct {
	Name     Name     `json:"name"`
	Address  Address  `json:"address"`
	Contact  Contact  `json:"contact"`
	Identity Identity `json:"identity"`
}

func (a *Appointee) IsEmpty() bool {
	return a == nil ||
		(a.Name.IsEmpty() && a.Address.IsEmpty() && a.Contact.IsEmpty() && a.Identity.IsEmpty())
}

type Appellant struct {
	Name                    Name       `json:"name"`
	Address                 Address    `json:"address"`
	Contact                 Contact    `json:"contact"`
	Identity                Identity   `json:"identity"`
	IsAppointee             string     `json:"isAppointee,omitempty"`
	Appointee               *Appointee `json:"appointee,omitempty"`
	ConfidentialityRequired string     `json:"confidentialityRequired,omitempty"`
	Role                    *Role      `json:"role,omitempty"`
	IbcRole                 string     `json:"ibcRole,omitempty"`
}

type Representative struct {
	HasRepresentative string  `json:"hasRepresentative,omitempty"`
	Name              Name    `json:"name"`
	Address           Address `json:"address"`
	Contact           Contact `json:"contact"`
	Organisation      string  `json:"organisation,omitempty"`
}

type OtherParty struct {
	ID      string   `json:"id,omitempty"`
	Name    Name     `json:"name"`
	Address *Address `json:"address,omitempty"`
}

type BenefitType struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

type MrnDetails struct {
	MrnDate          string `json:"mrnDate,omitempty"`
	MrnLateReason    string `json:"mrnLateReason,omitempty"`
	DwpIssuingOffice string `json:"dwpIssuingOffice,omitempty"`
}

type AppealReason struct {
	Description string `json:"description,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

type AppealReasons struct {
	Reasons      []AppealReason `json:"reasons,omitempty"`
	OtherReasons string         `json:"otherReasons,omitempty"`
}

func (r *AppealReasons) IsEmpty() bool {
	return r == nil || len(r.Reasons) == 0
}

type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type ExcludeDate struct {
	Value DateRange `json:"value"`
}

const (
	HearingTypeOral  = "oral"
	HearingTypePaper = "paper"
)

type HearingOptions struct {
	WantsToAttend       string        `json:"wantsToAttend,omitempty"`
	WantsSupport        string        `json:"wantsSupport,omitempty"`
	AgreeLessNotice     string        `json:"agreeLessNotice,omitempty"`
	ScheduleHearing     string        `json:"scheduleHearing,omitempty"`
	ExcludeDates        []ExcludeDate `json:"excludeDates,omitempty"`
	Arrangements        []string      `json:"arrangements,omitempty"`
	Other               string        `json:"other,omitempty"`
	LanguageInterpreter string        `json:"languageInterpreter,omitempty"`
	Languages           string        `json:"languages,omitempty"`
	SignLanguageType    string        `json:"signLanguageType,omitempty"`
}

type HearingSubtype struct {
	WantsHearingTypeTelephone  string `json:"wantsHearingTypeTelephone,omitempty"`
	HearingTelephoneNumber     string `json:"hearingTelephoneNumber,omitempty"`
	WantsHearingTypeVideo      string `json:"wantsHearingTypeVideo,omitempty"`
	HearingVideoEmail          string `json:"hearingVideoEmail,omitempty"`
	WantsHearingTypeFaceToFace string `json:"wantsHearingTypeFaceToFace,omitempty"`
}

// WantsAnyAttendanceMethod reports whether at least one attendance method
// was requested; oral hearings on the newer forms require one.
func (h HearingSubtype) WantsAnyAttendanceMethod() bool {
	return h.WantsHearingTypeTelephone == Yes ||
		h.WantsHearingTypeVideo == Yes ||
		h.WantsHearingTypeFaceToFace == Yes
}

type Subscription struct {
	Email                string `json:"email,omitempty"`
	Mobile               string `json:"mobile,omitempty"`
	SubscribeEmail       string `json:"subscribeEmail,omitempty"`
	SubscribeSms         string `json:"subscribeSms,omitempty"`
	WantSmsNotifications string `json:"wantSmsNotifications,omitempty"`
	// Tya is the opaque track-your-appeal token issued per party.
	Tya string `json:"tya,omitempty"`
}

type Subscriptions struct {
	Appellant      *Subscription `json:"appellantSubscription,omitempty"`
	Appointee      *Subscription `json:"appointeeSubscription,omitempty"`
	Representative *Subscription `json:"representativeSubscription,omitempty"`
}

// Document is a scanned record attached to the case, classified by the
// form-derived type.
type Document struct {
	URL          string `json:"documentLink,omitempty"`
	DateAdded    string `json:"documentDateAdded,omitempty"`
	FileName     string `json:"documentFileName,omitempty"`
	DocumentType string `json:"documentType,omitempty"`
}

type Appeal struct {
	BenefitType    *BenefitType    `json:"benefitType,omitempty"`
	Appellant      *Appellant      `json:"appellant,omitempty"`
	AppealReasons  *AppealReasons  `json:"appealReasons,omitempty"`
	Rep            *Representative `json:"rep,omitempty"`
	MrnDetails     *MrnDetails     `json:"mrnDetails,omitempty"`
	HearingType    string          `json:"hearingType,omitempty"`
	HearingOptions *HearingOptions `json:"hearingOptions,omitempty"`
	HearingSubtype *HearingSubtype `json:"hearingSubtype,omitempty"`
	Signer         string          `json:"signer,omitempty"`
	ReceivedVia    string          `json:"receivedVia,omitempty"`
}

// CaseLink references an existing case sharing the appellant's identity.
type CaseLink struct {
	CaseReference string `json:"caseReference"`
}

// RegionalProcessingCentre is the tribunal office that administers cases
// for a postcode area.
type RegionalProcessingCentre struct {
	Name         string `json:"name"`
	Address1     string `json:"address1,omitempty"`
	Address2     string `json:"address2,omitempty"`
	City         string `json:"city,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Region       string `json:"region,omitempty"`
	EpimsID      string `json:"epimsId,omitempty"`
	HearingRoute string `json:"hearingRoute,omitempty"`
}

// CaseManagementLocation pins the case to a hearing location pair.
type CaseManagementLocation struct {
	Region       string `json:"region"`
	BaseLocation string `json:"baseLocation"`
}

// Case is the transformed aggregate built once per intake event and then
// annotated (venue, region, associated cases) by downstream steps within
// the same request.
type Case struct {
	Appeal        *Appeal       `json:"appeal,omitempty"`
	Documents     []Document    `json:"sscsDocument,omitempty"`
	Subscriptions Subscriptions `json:"subscriptions"`
	FormType      FormType      `json:"formType,omitempty"`

	EvidencePresent   string `json:"evidencePresent,omitempty"`
	BenefitCode       string `json:"benefitCode,omitempty"`
	IssueCode         string `json:"issueCode,omitempty"`
	CaseCode          string `json:"caseCode,omitempty"`
	DwpRegionalCentre string `json:"dwpRegionalCentre,omitempty"`

	BulkScanCaseReference string `json:"bulkScanCaseReference,omitempty"`
	CaseCreated           string `json:"caseCreated,omitempty"`

	ProcessingVenue          string                    `json:"processingVenue,omitempty"`
	CaseManagementLocation   *CaseManagementLocation   `json:"caseManagementLocation,omitempty"`
	Region                   string                    `json:"region,omitempty"`
	RegionalProcessingCentre *RegionalProcessingCentre `json:"regionalProcessingCenter,omitempty"`

	AssociatedCases    []CaseLink `json:"associatedCase,omitempty"`
	LinkedCasesBoolean string     `json:"linkedCasesBoolean,omitempty"`

	ChildMaintenanceNumber string       `json:"childMaintenanceNumber,omitempty"`
	OtherParties           []OtherParty `json:"otherParties,omitempty"`

	IsConfidentialCase     string `json:"isConfidentialCase,omitempty"`
	InterlocReferralReason string `json:"interlocReferralReason,omitempty"`
	CreatedInGapsFrom      string `json:"createdInGapsFrom,omitempty"`
}

// Nino returns the appellant's national insurance number, or "".
func (c *Case) Nino() string {
	if c == nil || c.Appeal == nil || c.Appeal.Appellant == nil {
		return ""
	}
	return c.Appeal.Appellant.Identity.Nino
}

// MrnDate returns the mandatory-reconsideration-notice date, or "".
func (c *Case) MrnDate() string {
	if c == nil || c.Appeal == nil || c.Appeal.MrnDetails == nil {
		return ""
	}
	return c.Appeal.MrnDetails.MrnDate
}

// BenefitCodeValue returns the resolved benefit short code, or "".
func (c *Case) BenefitCodeValue() string {
	if c == nil || c.Appeal == nil || c.Appeal.BenefitType == nil {
		return ""
	}
	return c.Appeal.BenefitType.Code
}

// NormaliseNino strips whitespace and uppercases a raw national insurance
// number for storage and matching.
func NormaliseNino(nino string) string {
	return strings.ToUpper(strings.ReplaceAll(nino, " ", ""))
}
