package transform

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/benefit"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/ocr"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/casestore"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
)

type fakeStore struct {
	byNino   []*casestore.Record
	ninoErr  error
	exact    *casestore.Record
	exactErr error
	created  []*casestore.Record
}

func (s *fakeStore) FindByNino(ctx context.Context, nino string) ([]*casestore.Record, error) {
	return s.byNino, s.ninoErr
}

func (s *fakeStore) FindExactMatch(ctx context.Context, nino, benefitCode, mrnDate string) (*casestore.Record, error) {
	return s.exact, s.exactErr
}

func (s *fakeStore) Create(ctx context.Context, rec *casestore.Record) error {
	s.created = append(s.created, rec)
	return nil
}

func (s *fakeStore) GetByRef(ctx context.Context, caseRef string) (*casestore.Record, error) {
	return nil, nil
}

func newTestTransformer(store casestore.Store) *Transformer {
	resolver := benefit.NewResolver(benefit.NewMatcher(zerolog.Nop()))
	return New(resolver, store, Options{UCOfficeActive: true}, zerolog.Nop())
}

func payloadOf(fields map[string]string) *ocr.ScanPayload {
	p := &ocr.ScanPayload{ID: "test-case-1", OpeningDate: "2024-03-01"}
	for name, value := range fields {
		p.Fields = append(p.Fields, ocr.Field{Name: name, Value: value})
	}
	return p
}

func TestTransformHappyPath(t *testing.T) {
	p := payloadOf(map[string]string{
		"form_type":                      "sscs1",
		"person1_title":                  "Mr",
		"person1_first_name":             "Jo",
		"person1_last_name":              "Bloggs",
		"person1_address_line1":          "1 Appeal House",
		"person1_address_line2":          "Cardiff",
		"person1_address_line3":          "Glamorgan",
		"person1_postcode":               "CF24 0AB",
		"person1_dob":                    "12/08/1987",
		"person1_nino":                   "jt 01 23 45 b",
		"person1_mobile":                 "07411222222",
		"person1_want_sms_notifications": "true",
		"mrn_date":                       "01/02/2024",
		"office":                         "1",
		"benefit_type_description":       "PIP",
		"is_hearing_type_oral":           "true",
		"is_hearing_type_paper":          "false",
		"signature_name":                 "Jo Bloggs",
	})
	p.Records = []ocr.ScannedRecord{
		{Type: "Form", FileName: "sscs1.pdf", URL: "http://dm/doc/1", ScannedDate: "2024-02-20T09:30:00Z"},
	}

	resp := newTestTransformer(&fakeStore{}).Transform(context.Background(), p, false)

	if len(resp.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", resp.Errors)
	}
	c := resp.TransformedCase
	if c == nil {
		t.Fatal("no transformed case")
	}
	a := c.Appeal.Appellant
	if a == nil {
		t.Fatal("no appellant")
	}
	if a.Name.FirstName != "Jo" || a.Name.LastName != "Bloggs" {
		t.Errorf("appellant name = %+v", a.Name)
	}
	if a.Identity.Nino != "JT012345B" {
		t.Errorf("nino = %q, want normalised JT012345B", a.Identity.Nino)
	}
	if a.Identity.DOB != "1987-08-12" {
		t.Errorf("dob = %q", a.Identity.DOB)
	}
	if a.Address.Town != "Cardiff" || a.Address.County != "Glamorgan" {
		t.Errorf("address = %+v", a.Address)
	}
	if a.IsAppointee != appeal.No {
		t.Errorf("isAppointee = %q", a.IsAppointee)
	}
	if got := c.Appeal.BenefitType; got == nil || got.Code != appeal.BenefitPIP {
		t.Errorf("benefit type = %+v", got)
	}
	if c.Appeal.MrnDetails.MrnDate != "2024-02-01" {
		t.Errorf("mrn date = %q", c.Appeal.MrnDetails.MrnDate)
	}
	if c.Appeal.MrnDetails.DwpIssuingOffice != "DWP PIP (1)" {
		t.Errorf("issuing office = %q", c.Appeal.MrnDetails.DwpIssuingOffice)
	}
	if c.Appeal.HearingType != appeal.HearingTypeOral {
		t.Errorf("hearing type = %q", c.Appeal.HearingType)
	}
	if c.Appeal.HearingOptions.WantsToAttend != appeal.Yes {
		t.Errorf("wantsToAttend = %q", c.Appeal.HearingOptions.WantsToAttend)
	}
	if c.Appeal.ReceivedVia != "Paper" || c.Appeal.Signer != "Jo Bloggs" {
		t.Errorf("receivedVia = %q signer = %q", c.Appeal.ReceivedVia, c.Appeal.Signer)
	}
	if c.EvidencePresent != appeal.No {
		t.Errorf("evidencePresent = %q, form-only envelope carries no evidence", c.EvidencePresent)
	}
	if len(c.Documents) != 1 || c.Documents[0].DateAdded != "2024-02-20" {
		t.Errorf("documents = %+v", c.Documents)
	}
	if c.ProcessingVenue != "Cardiff" || c.Region != "Wales" {
		t.Errorf("venue = %q region = %q", c.ProcessingVenue, c.Region)
	}
	if c.CaseManagementLocation == nil || c.CaseManagementLocation.BaseLocation != "649000" {
		t.Errorf("case management location = %+v", c.CaseManagementLocation)
	}
	sub := c.Subscriptions.Appellant
	if sub == nil {
		t.Fatal("no appellant subscription")
	}
	if sub.SubscribeSms != appeal.Yes || len(sub.Tya) != 10 {
		t.Errorf("subscription = %+v", sub)
	}
	if c.LinkedCasesBoolean != appeal.No {
		t.Errorf("linkedCasesBoolean = %q", c.LinkedCasesBoolean)
	}
	if c.BulkScanCaseReference != "test-case-1" || c.CaseCreated != "2024-03-01" {
		t.Errorf("reference = %q caseCreated = %q", c.BulkScanCaseReference, c.CaseCreated)
	}
}

func TestTransformNoOcrData(t *testing.T) {
	p := &ocr.ScanPayload{ID: "empty", FormType: "sscs1"}
	resp := newTestTransformer(&fakeStore{}).Transform(context.Background(), p, false)
	if resp.Status != appeal.StatusErrors {
		t.Fatalf("status = %q", resp.Status)
	}
	found := false
	for _, e := range resp.Errors {
		if e == "No OCR data, case cannot be created" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v", resp.Errors)
	}
}

func TestTransformSchemaGateShortCircuits(t *testing.T) {
	p := payloadOf(map[string]string{
		"form_type":          "sscs1peu",
		"person1_first_name": "Jo",
		"shoe_size":          "9",
	})
	resp := newTestTransformer(&fakeStore{}).Transform(context.Background(), p, false)
	if resp.Status != appeal.StatusErrors {
		t.Fatalf("status = %q, want schema violation to stop the transform", resp.Status)
	}
	if resp.TransformedCase != nil {
		t.Error("case built despite schema violation")
	}
	if len(resp.Errors) != 1 || !strings.Contains(resp.Errors[0], "shoe_size") {
		t.Errorf("errors = %v", resp.Errors)
	}
}

func TestTransformCombineWarnings(t *testing.T) {
	p := payloadOf(map[string]string{
		"form_type":          "sscs1peu",
		"person1_first_name": "Jo",
		"person1_dob":        "31/02/2001",
	})
	resp := newTestTransformer(&fakeStore{}).Transform(context.Background(), p, true)
	if len(resp.Errors) != 0 {
		t.Errorf("errors should have been demoted, got %v", resp.Errors)
	}
	if len(resp.Warnings) == 0 {
		t.Error("expected the invalid dob to surface as a warning")
	}
}

func TestTransformAppointee(t *testing.T) {
	p := payloadOf(map[string]string{
		"form_type":             "sscs1",
		"person1_title":         "Mrs",
		"person1_first_name":    "Pat",
		"person1_last_name":     "Carer",
		"person1_address_line1": "2 Help Street",
		"person1_address_line2": "Leeds",
		"person1_postcode":      "LS1 1AB",
		"person2_title":         "Mr",
		"person2_first_name":    "Sam",
		"person2_last_name":     "Appellant",
		"person2_nino":          "JT012345B",
	})
	resp := newTestTransformer(&fakeStore{}).Transform(context.Background(), p, false)
	c := resp.TransformedCase
	if c == nil {
		t.Fatal("no transformed case")
	}
	a := c.Appeal.Appellant
	if a == nil || a.Name.LastName != "Appellant" {
		t.Fatalf("appellant = %+v, want person2", a)
	}
	if a.Appointee == nil || a.Appointee.Name.LastName != "Carer" {
		t.Fatalf("appointee = %+v, want person1", a.Appointee)
	}
	if a.IsAppointee != appeal.Yes {
		t.Errorf("isAppointee = %q", a.IsAppointee)
	}
	if c.Subscriptions.Appointee == nil || c.Subscriptions.Appellant != nil {
		t.Errorf("subscriptions = %+v, notifications go to the appointee", c.Subscriptions)
	}
}

func TestTransformDuplicateCase(t *testing.T) {
	store := &fakeStore{exact: &casestore.Record{CaseRef: "1234567890"}}
	p := payloadOf(map[string]string{
		"form_type":                "sscs1",
		"person1_first_name":       "Jo",
		"person1_last_name":        "Bloggs",
		"person1_nino":             "JT012345B",
		"mrn_date":                 "01/02/2024",
		"benefit_type_description": "PIP",
	})
	resp := newTestTransformer(store).Transform(context.Background(), p, false)
	found := false
	for _, e := range resp.Errors {
		if e == "Duplicate case already exists - please reject this exception record" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v", resp.Errors)
	}
}

func TestTransformAssociatedCases(t *testing.T) {
	store := &fakeStore{byNino: []*casestore.Record{{CaseRef: "111"}, {CaseRef: "222"}}}
	p := payloadOf(map[string]string{
		"form_type":          "sscs1",
		"person1_first_name": "Jo",
		"person1_nino":       "JT012345B",
	})
	c := newTestTransformer(store).Transform(context.Background(), p, false).TransformedCase
	if c == nil {
		t.Fatal("no transformed case")
	}
	if len(c.AssociatedCases) != 2 || c.AssociatedCases[0].CaseReference != "111" {
		t.Errorf("associated cases = %+v", c.AssociatedCases)
	}
	if c.LinkedCasesBoolean != appeal.Yes {
		t.Errorf("linkedCasesBoolean = %q", c.LinkedCasesBoolean)
	}
}

func TestTransformAssociatedCasesLookupFailure(t *testing.T) {
	store := &fakeStore{ninoErr: errors.New("connection refused")}
	p := payloadOf(map[string]string{
		"form_type":          "sscs1",
		"person1_first_name": "Jo",
		"person1_nino":       "JT012345B",
	})
	resp := newTestTransformer(store).Transform(context.Background(), p, false)
	if resp.TransformedCase == nil {
		t.Fatal("lookup failure must not block the transform")
	}
	if resp.TransformedCase.LinkedCasesBoolean != appeal.No {
		t.Errorf("linkedCasesBoolean = %q", resp.TransformedCase.LinkedCasesBoolean)
	}
}

func TestBuildAddress(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		sscs8  bool
		want   appeal.Address
	}{
		{
			name: "three line domestic layout",
			fields: map[string]string{
				"person1_address_line1": "1 Street",
				"person1_address_line2": "Town",
				"person1_address_line3": "County",
				"person1_postcode":      "LS1 1AB",
			},
			want: appeal.Address{Line1: "1 Street", Town: "Town", County: "County", Postcode: "LS1 1AB"},
		},
		{
			name: "four line domestic layout",
			fields: map[string]string{
				"person1_address_line1": "1 Street",
				"person1_address_line2": "Flat 2",
				"person1_address_line3": "Town",
				"person1_address_line4": "County",
				"person1_postcode":      "LS1 1AB",
			},
			want: appeal.Address{Line1: "1 Street", Line2: "Flat 2", Town: "Town", County: "County", Postcode: "LS1 1AB"},
		},
		{
			name: "missing county gets placeholder",
			fields: map[string]string{
				"person1_address_line1": "1 Street",
				"person1_address_line2": "Town",
				"person1_postcode":      "LS1 1AB",
			},
			want: appeal.Address{Line1: "1 Street", Town: "Town", County: ".", Postcode: "LS1 1AB"},
		},
		{
			name: "overseas layout keys off port of entry",
			fields: map[string]string{
				"person1_address_line1": "12 Rue de la Paix",
				"person1_address_line2": "Paris",
				"person1_country":       "France",
				"person1_port_of_entry": "GB000434",
			},
			sscs8: true,
			want: appeal.Address{
				Line1: "12 Rue de la Paix", Town: "Paris", Country: "France",
				PortOfEntry: "GB000434", InMainlandUK: appeal.No,
			},
		},
		{
			name: "mainland infected blood layout",
			fields: map[string]string{
				"person1_address_line1": "1 Street",
				"person1_address_line2": "Flat 2",
				"person1_address_line3": "Town",
				"person1_postcode":      "LS1 1AB",
			},
			sscs8: true,
			want: appeal.Address{
				Line1: "1 Street", Line2: "Flat 2", Town: "Town",
				Postcode: "LS1 1AB", InMainlandUK: appeal.Yes,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildAddress(ocr.NewAccessor(tt.fields), person1, tt.sscs8)
			if got != tt.want {
				t.Errorf("address = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindHearingType(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{"oral ticked paper unticked", map[string]string{"is_hearing_type_oral": "true", "is_hearing_type_paper": "false"}, appeal.HearingTypeOral},
		{"paper ticked oral unticked", map[string]string{"is_hearing_type_oral": "false", "is_hearing_type_paper": "true"}, appeal.HearingTypePaper},
		{"missing paper inferred from oral", map[string]string{"is_hearing_type_oral": "true"}, appeal.HearingTypeOral},
		{"missing oral inferred from paper", map[string]string{"is_hearing_type_paper": "true"}, appeal.HearingTypePaper},
		{"both ticked is a contradiction", map[string]string{"is_hearing_type_oral": "true", "is_hearing_type_paper": "true"}, ""},
		{"both unticked is a contradiction", map[string]string{"is_hearing_type_oral": "false", "is_hearing_type_paper": "false"}, ""},
		{"neither present", map[string]string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := appeal.NewFindings()
			if got := findHearingType(f, ocr.NewAccessor(tt.fields)); got != tt.want {
				t.Errorf("hearing type = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractExcludeDates(t *testing.T) {
	t.Run("singles and a range", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{
			"hearing_options_exclude_dates": "01/01/2020, 07/01/2020, 12/01/2020 - 15/01/2020",
		})
		got := extractExcludeDates(f, acc)
		if f.HasErrors() {
			t.Fatalf("unexpected errors: %v", f.Errors())
		}
		want := []appeal.ExcludeDate{
			{Value: appeal.DateRange{Start: "2020-01-01"}},
			{Value: appeal.DateRange{Start: "2020-01-07"}},
			{Value: appeal.DateRange{Start: "2020-01-12", End: "2020-01-15"}},
		}
		if len(got) != len(want) {
			t.Fatalf("got %d entries, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("range with three ends is rejected", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{
			"hearing_options_exclude_dates": "01/01/2020 - 05/01/2020 - 09/01/2020",
		})
		extractExcludeDates(f, acc)
		if !f.HasErrors() {
			t.Fatal("expected an invalid range error")
		}
		if !strings.Contains(f.Errors()[0], "invalid date range") {
			t.Errorf("error = %q", f.Errors()[0])
		}
	})

	t.Run("unparseable date is rejected", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{"hearing_options_exclude_dates": "next tuesday"})
		extractExcludeDates(f, acc)
		if !f.HasErrors() {
			t.Fatal("expected an invalid range error")
		}
	})

	t.Run("dates promised but not given", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{"tell_tribunal_about_dates": "true"})
		if got := extractExcludeDates(f, acc); got != nil {
			t.Errorf("exclude dates = %+v, want none", got)
		}
		if !f.HasWarnings() {
			t.Fatal("expected a missing dates warning")
		}
		if !strings.Contains(f.Warnings()[0], "tell_tribunal_about_dates is true") {
			t.Errorf("warning = %q", f.Warnings()[0])
		}
	})
}

func TestBuildHearingOptions(t *testing.T) {
	tr := newTestTransformer(&fakeStore{})

	t.Run("arrangements and default sign language", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{
			"hearing_options_sign_language_interpreter": "true",
			"hearing_options_hearing_loop":              "true",
			"hearing_options_accessible_hearing_rooms":  "false",
		})
		got := tr.buildHearingOptions(f, acc, appeal.HearingTypeOral)
		if got.SignLanguageType != "British Sign Language" {
			t.Errorf("sign language = %q", got.SignLanguageType)
		}
		want := []string{"hearingLoop", "signLanguageInterpreter"}
		if len(got.Arrangements) != len(want) || got.Arrangements[0] != want[0] || got.Arrangements[1] != want[1] {
			t.Errorf("arrangements = %v, want %v", got.Arrangements, want)
		}
		if got.WantsSupport != appeal.Yes || got.WantsToAttend != appeal.Yes {
			t.Errorf("wantsSupport = %q wantsToAttend = %q", got.WantsSupport, got.WantsToAttend)
		}
	})

	t.Run("language interpreter from type and dialect", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{
			"hearing_options_language_type": "Spanish",
			"hearing_options_dialect":       "Castilian",
		})
		got := tr.buildHearingOptions(f, acc, appeal.HearingTypePaper)
		if got.LanguageInterpreter != appeal.Yes || got.Languages != "Spanish Castilian" {
			t.Errorf("interpreter = %q languages = %q", got.LanguageInterpreter, got.Languages)
		}
		if got.WantsToAttend != appeal.No {
			t.Errorf("wantsToAttend = %q", got.WantsToAttend)
		}
	})

	t.Run("schedule hearing needs attendance and dates", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{"hearing_options_exclude_dates": "01/01/2030"})
		if got := tr.buildHearingOptions(f, acc, appeal.HearingTypeOral); got.ScheduleHearing != appeal.Yes {
			t.Errorf("scheduleHearing = %q", got.ScheduleHearing)
		}
		if got := tr.buildHearingOptions(f, acc, appeal.HearingTypePaper); got.ScheduleHearing != appeal.No {
			t.Errorf("scheduleHearing on paper = %q", got.ScheduleHearing)
		}
	})
}

func TestBuildHearingSubtype(t *testing.T) {
	t.Run("falls back to person contact details", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{
			"hearing_type_telephone": "true",
			"hearing_type_video":     "true",
			"person1_mobile":         "07411222222",
			"person1_email":          "jo@example.com",
		})
		got := buildHearingSubtype(f, acc)
		if got.HearingTelephoneNumber != "07411222222" {
			t.Errorf("telephone = %q", got.HearingTelephoneNumber)
		}
		if got.HearingVideoEmail != "jo@example.com" {
			t.Errorf("video email = %q", got.HearingVideoEmail)
		}
	})

	t.Run("absent fields leave the subtype empty", func(t *testing.T) {
		f := appeal.NewFindings()
		got := buildHearingSubtype(f, ocr.NewAccessor(map[string]string{"person1_mobile": "07411222222"}))
		if got.HearingTelephoneNumber != "" || got.WantsHearingTypeTelephone != "" {
			t.Errorf("subtype = %+v", got)
		}
	})
}

func TestBuildDocuments(t *testing.T) {
	tr := newTestTransformer(&fakeStore{})

	t.Run("filename problems surface as errors", func(t *testing.T) {
		f := appeal.NewFindings()
		tr.buildDocuments(f, []ocr.ScannedRecord{
			{Type: "Form", FileName: ""},
			{Type: "Form", FileName: "notes"},
			{Type: "Form", FileName: "scan.exe"},
		}, false, "", appeal.FormSscs1)
		want := []string{
			"File name field must not be empty",
			"File name 'notes' has an invalid file extension",
			"File name 'scan.exe' has an invalid file extension",
		}
		got := f.Errors()
		if len(got) != len(want) {
			t.Fatalf("errors = %v", got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("error %d = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("reclassified form swaps the document subtype", func(t *testing.T) {
		f := appeal.NewFindings()
		docs := tr.buildDocuments(f, []ocr.ScannedRecord{
			{Type: "Form", Subtype: "sscs1", FileName: "form.pdf"},
			{Type: "Other", Subtype: "letter", FileName: "letter.pdf"},
		}, true, "sscs1", appeal.FormSscs1PEU)
		if docs[0].DocumentType != "sscs1" {
			t.Errorf("form document type = %q", docs[0].DocumentType)
		}
		if docs[1].DocumentType != "appellantEvidence" {
			t.Errorf("evidence document type = %q", docs[1].DocumentType)
		}
	})

	t.Run("scanned timestamp is trimmed to the date", func(t *testing.T) {
		f := appeal.NewFindings()
		docs := tr.buildDocuments(f, []ocr.ScannedRecord{
			{Type: "Form", FileName: "form.pdf", ScannedDate: "2024-02-20T09:30:00.000Z"},
		}, false, "", appeal.FormSscs1)
		if docs[0].DateAdded != "2024-02-20" {
			t.Errorf("dateAdded = %q", docs[0].DateAdded)
		}
	})
}

func TestDocumentType(t *testing.T) {
	tests := []struct {
		subtype string
		want    string
	}{
		{"SSCS1", "sscs1"},
		{"sscs1peu", "sscs1"},
		{"SSCS2", "sscs2"},
		{"sscs5", "sscs5"},
		{"SSCS8", "appellantEvidence"},
		{"", "appellantEvidence"},
	}
	for _, tt := range tests {
		if got := documentType(tt.subtype); got != tt.want {
			t.Errorf("documentType(%q) = %q, want %q", tt.subtype, got, tt.want)
		}
	}
}

func TestEvidencePresent(t *testing.T) {
	formOnly := []ocr.ScannedRecord{{Type: "Form"}, {Type: "form"}}
	if got := evidencePresent(formOnly); got != appeal.No {
		t.Errorf("evidencePresent = %q", got)
	}
	withOther := append(formOnly, ocr.ScannedRecord{Type: "Other"})
	if got := evidencePresent(withOther); got != appeal.Yes {
		t.Errorf("evidencePresent = %q", got)
	}
}

func TestConfidentialCase(t *testing.T) {
	if got := confidentialCase(appeal.FormSscs2, appeal.Yes); got != appeal.Yes {
		t.Errorf("sscs2 confidential = %q", got)
	}
	if got := confidentialCase(appeal.FormSscs1, appeal.Yes); got != "" {
		t.Errorf("sscs1 confidential = %q", got)
	}
	if got := confidentialCase(appeal.FormSscs5, appeal.No); got != "" {
		t.Errorf("unrequested confidential = %q", got)
	}
}

func TestTransformTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Doctor", "Dr"},
		{"reverend", "Rev"},
		{"Mr", "Mr"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := transformTitle(tt.in); got != tt.want {
			t.Errorf("transformTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildAppellantRole(t *testing.T) {
	tr := newTestTransformer(&fakeStore{})
	tests := []struct {
		name    string
		fields  map[string]string
		want    *appeal.Role
		warning string
	}{
		{
			name:   "paying parent",
			fields: map[string]string{"is_paying_parent": "true"},
			want:   &appeal.Role{Name: "Paying parent"},
		},
		{
			name:   "receiving parent",
			fields: map[string]string{"is_receiving_parent": "true", "is_paying_parent": "false"},
			want:   &appeal.Role{Name: "Receiving parent"},
		},
		{
			name:   "other with details",
			fields: map[string]string{"is_another_party": "true", "other_party_details": "Grandparent"},
			want:   &appeal.Role{Name: "Other", Description: "Grandparent"},
		},
		{
			name:    "other without details",
			fields:  map[string]string{"is_another_party": "true"},
			warning: "other_party_details fields are empty",
		},
		{
			name:    "nothing ticked",
			fields:  map[string]string{},
			warning: "is_paying_parent, is_receiving_parent, is_another_party and other_party_details fields are empty",
		},
		{
			name:    "two roles ticked",
			fields:  map[string]string{"is_paying_parent": "true", "is_receiving_parent": "true"},
			warning: "is_paying_parent and is_receiving_parent have conflicting values",
		},
		{
			name:    "role and details conflict",
			fields:  map[string]string{"is_paying_parent": "true", "other_party_details": "Grandparent"},
			warning: "is_paying_parent and other_party_details have conflicting values",
		},
		{
			name:   "details only",
			fields: map[string]string{"other_party_details": "Grandparent"},
			want:   &appeal.Role{Name: "Other", Description: "Grandparent"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := appeal.NewFindings()
			got := tr.buildAppellantRole(f, ocr.NewAccessor(tt.fields), false)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("role = %+v, want none", got)
				}
				if len(f.Warnings()) != 1 || f.Warnings()[0] != tt.warning {
					t.Errorf("warnings = %v, want %q", f.Warnings(), tt.warning)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Errorf("role = %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("warnings suppressed", func(t *testing.T) {
		f := appeal.NewFindings()
		if got := tr.buildAppellantRole(f, ocr.NewAccessor(map[string]string{}), true); got != nil {
			t.Errorf("role = %+v", got)
		}
		if f.HasWarnings() {
			t.Errorf("warnings = %v", f.Warnings())
		}
	})
}

func TestBuildIbcRole(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{"self", map[string]string{"ibc_role_for_self": "true"}, "myself"},
		{"under eighteen", map[string]string{"ibc_role_for_u18": "true"}, "parent"},
		{"power of attorney", map[string]string{"ibc_role_for_poa": "true"}, "powerOfAttorney"},
		{"deceased", map[string]string{"ibc_role_for_deceased": "true"}, "deceasedRepresentative"},
		{"none ticked", map[string]string{"ibc_role_for_self": "false"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := appeal.NewFindings()
			if got := buildIbcRole(f, ocr.NewAccessor(tt.fields)); got != tt.want {
				t.Errorf("ibc role = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveIssuingOffice(t *testing.T) {
	tests := []struct {
		name     string
		ucActive bool
		fields   map[string]string
		bt       *appeal.BenefitType
		want     string
	}{
		{
			name:   "pip number maps to case value",
			fields: map[string]string{"office": "1"},
			bt:     &appeal.BenefitType{Code: appeal.BenefitPIP},
			want:   "DWP PIP (1)",
		},
		{
			name:   "pip wrapped office accepted",
			fields: map[string]string{"office": "DWP PIP (3)"},
			bt:     &appeal.BenefitType{Code: appeal.BenefitPIP},
			want:   "DWP PIP (3)",
		},
		{
			name:   "unknown office resolves to nothing",
			fields: map[string]string{"office": "nowhere"},
			bt:     &appeal.BenefitType{Code: appeal.BenefitPIP},
			want:   "",
		},
		{
			name:     "uc office kept while the flag is active",
			ucActive: true,
			fields:   map[string]string{"office": "UC Recovery from Estates"},
			bt:       &appeal.BenefitType{Code: appeal.BenefitUC},
			want:     "UC Recovery from Estates",
		},
		{
			name:   "uc office forced while the flag is off",
			fields: map[string]string{"office": "UC Recovery from Estates"},
			bt:     &appeal.BenefitType{Code: appeal.BenefitUC},
			want:   "Universal Credit",
		},
		{
			name:   "auto office benefit ignores the form",
			fields: map[string]string{"office": "anything"},
			bt:     &appeal.BenefitType{Code: appeal.BenefitCarersAllowance},
			want:   "Carer's Allowance Dispute Resolution Team",
		},
		{
			name:   "infected blood routes to the ibca office",
			fields: map[string]string{"office": "anything"},
			bt:     &appeal.BenefitType{Code: appeal.BenefitInfectedBlood},
			want:   "IBCA",
		},
		{
			name:   "no benefit keeps the raw office",
			fields: map[string]string{"office": "somewhere"},
			want:   "somewhere",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := benefit.NewResolver(benefit.NewMatcher(zerolog.Nop()))
			tr := New(resolver, &fakeStore{}, Options{UCOfficeActive: tt.ucActive}, zerolog.Nop())
			if got := tr.resolveIssuingOffice(ocr.NewAccessor(tt.fields), tt.bt); got != tt.want {
				t.Errorf("issuing office = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePostcodeOrPort(t *testing.T) {
	tests := []struct {
		name string
		ap   *appeal.Appeal
		want string
	}{
		{"nil appeal", nil, ""},
		{
			name: "appellant postcode",
			ap: &appeal.Appeal{Appellant: &appeal.Appellant{
				Address: appeal.Address{Postcode: "LS1 1AB"},
			}},
			want: "LS1 1AB",
		},
		{
			name: "appointee postcode wins",
			ap: &appeal.Appeal{Appellant: &appeal.Appellant{
				Address: appeal.Address{Postcode: "LS1 1AB"},
				Appointee: &appeal.Appointee{
					Name:    appeal.Name{LastName: "Carer"},
					Address: appeal.Address{Postcode: "CF24 0AB"},
				},
			}},
			want: "CF24 0AB",
		},
		{
			name: "port of entry for overseas appellants",
			ap: &appeal.Appeal{Appellant: &appeal.Appellant{
				Address: appeal.Address{PortOfEntry: "GB000434"},
			}},
			want: "GB000434",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePostcodeOrPort(tt.ap); got != tt.want {
				t.Errorf("postcode or port = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildOtherParties(t *testing.T) {
	tr := newTestTransformer(&fakeStore{})

	t.Run("party with address", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{
			"other_party_first_name":       "Alex",
			"other_party_last_name":        "Other",
			"is_other_party_address_known": "true",
			"other_party_address_line1":    "9 Side Road",
			"other_party_address_line2":    "Hull",
			"other_party_postcode":         "HU1 1AB",
		})
		got := tr.buildOtherParties(f, acc, false)
		if len(got) != 1 || got[0].ID != "1" {
			t.Fatalf("other parties = %+v", got)
		}
		if got[0].Address == nil || got[0].Address.Postcode != "HU1 1AB" {
			t.Errorf("address = %+v", got[0].Address)
		}
	})

	t.Run("party without address", func(t *testing.T) {
		f := appeal.NewFindings()
		acc := ocr.NewAccessor(map[string]string{"other_party_first_name": "Alex"})
		got := tr.buildOtherParties(f, acc, false)
		if len(got) != 1 || got[0].Address != nil {
			t.Fatalf("other parties = %+v", got)
		}
	})

	t.Run("absent party", func(t *testing.T) {
		f := appeal.NewFindings()
		if got := tr.buildOtherParties(f, ocr.NewAccessor(map[string]string{}), false); got != nil {
			t.Errorf("other parties = %+v", got)
		}
	})
}
