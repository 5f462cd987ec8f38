package bulkscan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/benefit"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/ocr"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/transform"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/validate"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/casestore"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/platform/postcode"
)

type fakeStore struct {
	byNino    []*casestore.Record
	exact     *casestore.Record
	byRef     *casestore.Record
	createErr error
	created   []*casestore.Record
}

func (s *fakeStore) FindByNino(ctx context.Context, nino string) ([]*casestore.Record, error) {
	return s.byNino, nil
}

func (s *fakeStore) FindExactMatch(ctx context.Context, nino, benefitCode, mrnDate string) (*casestore.Record, error) {
	return s.exact, nil
}

func (s *fakeStore) Create(ctx context.Context, rec *casestore.Record) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, rec)
	return nil
}

func (s *fakeStore) GetByRef(ctx context.Context, caseRef string) (*casestore.Record, error) {
	return s.byRef, nil
}

func newTestService(store casestore.Store) *Service {
	log := zerolog.Nop()
	resolver := benefit.NewResolver(benefit.NewMatcher(log))
	transformer := transform.New(resolver, store, transform.Options{UCOfficeActive: true}, log)
	validator := validate.New(postcode.NewVerifier(postcode.Config{}, log), true, log)
	return NewService(transformer, validator, store, log)
}

func cleanPayload() *ocr.ScanPayload {
	mrn := time.Now().AddDate(0, -1, 0).Format("02/01/2006")
	fields := map[string]string{
		"form_type":                "sscs1",
		"person1_title":            "Mr",
		"person1_first_name":       "Jo",
		"person1_last_name":        "Bloggs",
		"person1_address_line1":    "1 Appeal House",
		"person1_address_line2":    "Cardiff",
		"person1_address_line3":    "Glamorgan",
		"person1_postcode":         "CF24 0AB",
		"person1_dob":              "12/08/1987",
		"person1_nino":             "JT012345B",
		"mrn_date":                 mrn,
		"office":                   "1",
		"benefit_type_description": "PIP",
		"is_hearing_type_oral":     "true",
		"is_hearing_type_paper":    "false",
	}
	p := &ocr.ScanPayload{ID: "scan-1", OpeningDate: "2024-03-01"}
	for name, value := range fields {
		p.Fields = append(p.Fields, ocr.Field{Name: name, Value: value})
	}
	p.Records = []ocr.ScannedRecord{
		{Type: "Form", FileName: "sscs1.pdf", ScannedDate: "2024-02-20T09:30:00Z"},
	}
	return p
}

func TestTransformRecordCreatesCase(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	resp := svc.TransformRecord(context.Background(), cleanPayload())
	if len(resp.Errors) != 0 || len(resp.Warnings) != 0 {
		t.Fatalf("errors = %v warnings = %v", resp.Errors, resp.Warnings)
	}
	if resp.Status != appeal.StatusValid {
		t.Errorf("status = %q", resp.Status)
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d records", len(store.created))
	}
	rec := store.created[0]
	if rec.Event != string(appeal.EventValidAppealCreated) {
		t.Errorf("event = %q", rec.Event)
	}
	if rec.CaseRef != "scan-1" || rec.Nino != "JT012345B" || rec.BenefitCode != appeal.BenefitPIP {
		t.Errorf("record = %+v", rec)
	}

	c := resp.TransformedCase
	if c.CreatedInGapsFrom != "readyToList" {
		t.Errorf("createdInGapsFrom = %q", c.CreatedInGapsFrom)
	}
	if c.BenefitCode != "002" || c.IssueCode != "DD" || c.CaseCode != "002DD" {
		t.Errorf("codes = %q %q %q", c.BenefitCode, c.IssueCode, c.CaseCode)
	}
	if c.DwpRegionalCentre != "Newcastle" {
		t.Errorf("dwp regional centre = %q", c.DwpRegionalCentre)
	}
	if c.CaseCreated != time.Now().Format("2006-01-02") {
		t.Errorf("caseCreated = %q", c.CaseCreated)
	}
}

func TestTransformRecordWarningsBlock(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	p := cleanPayload()
	for i, f := range p.Fields {
		if f.Name == "person1_nino" {
			p.Fields[i].Value = ""
		}
	}
	resp := svc.TransformRecord(context.Background(), p)
	if resp.Status != appeal.StatusWarnings {
		t.Fatalf("status = %q, warnings = %v", resp.Status, resp.Warnings)
	}
	if len(store.created) != 0 {
		t.Errorf("created %d records, warnings must block creation", len(store.created))
	}
	if resp.TransformedCase == nil {
		t.Error("transformed case should still be returned for review")
	}
}

func TestTransformRecordIgnoreWarnings(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	p := cleanPayload()
	for i, f := range p.Fields {
		if f.Name == "person1_nino" {
			p.Fields[i].Value = ""
		}
	}
	p.IgnoreWarnings = true
	resp := svc.TransformRecord(context.Background(), p)
	if len(resp.Errors) != 0 {
		t.Fatalf("errors = %v", resp.Errors)
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d records", len(store.created))
	}
	if store.created[0].Event != string(appeal.EventIncompleteApplication) {
		t.Errorf("event = %q, accepted warnings downgrade the application", store.created[0].Event)
	}
}

func TestTransformRecordAutomatedProcessCannotIgnoreWarnings(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	p := cleanPayload()
	for i, f := range p.Fields {
		if f.Name == "person1_nino" {
			p.Fields[i].Value = ""
		}
	}
	p.IgnoreWarnings = true
	p.IsAutomatedProcess = true
	resp := svc.TransformRecord(context.Background(), p)
	if resp.Status != appeal.StatusWarnings {
		t.Fatalf("status = %q", resp.Status)
	}
	if len(store.created) != 0 {
		t.Errorf("created %d records", len(store.created))
	}
}

func TestTransformRecordSchemaError(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	p := cleanPayload()
	p.Fields = append(p.Fields, ocr.Field{Name: "shoe_size", Value: "9"})
	for i, f := range p.Fields {
		if f.Name == "form_type" {
			p.Fields[i].Value = "sscs1peu"
		}
	}
	resp := svc.TransformRecord(context.Background(), p)
	if resp.Status != appeal.StatusErrors {
		t.Fatalf("status = %q", resp.Status)
	}
	if len(store.created) != 0 {
		t.Errorf("created %d records", len(store.created))
	}
}

func TestTransformRecordPersistFailure(t *testing.T) {
	store := &fakeStore{createErr: errors.New("connection refused")}
	svc := newTestService(store)

	resp := svc.TransformRecord(context.Background(), cleanPayload())
	found := false
	for _, e := range resp.Errors {
		if e == "Internal error, case could not be saved" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v", resp.Errors)
	}
}

func TestValidateRecordDemotesErrors(t *testing.T) {
	svc := newTestService(&fakeStore{})

	p := cleanPayload()
	for i, f := range p.Fields {
		if f.Name == "person1_dob" {
			p.Fields[i].Value = "31/02/2001"
		}
	}
	resp := svc.ValidateRecord(context.Background(), p)
	if len(resp.Errors) != 0 {
		t.Errorf("errors = %v, transform problems should be reported as warnings here", resp.Errors)
	}
	found := false
	for _, w := range resp.Warnings {
		if w == "person1_dob is an invalid date field. Needs to be a valid date and in the format dd/mm/yyyy" {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v", resp.Warnings)
	}
}

func TestValidateRecordSchemaErrorStaysBlocking(t *testing.T) {
	svc := newTestService(&fakeStore{})

	p := cleanPayload()
	p.Fields = append(p.Fields, ocr.Field{Name: "shoe_size", Value: "9"})
	for i, f := range p.Fields {
		if f.Name == "form_type" {
			p.Fields[i].Value = "sscs1peu"
		}
	}
	resp := svc.ValidateRecord(context.Background(), p)
	if resp.Status != appeal.StatusErrors {
		t.Fatalf("status = %q, schema violations must not be demoted to warnings", resp.Status)
	}
	if len(resp.Errors) == 0 {
		t.Error("errors empty, the schema findings were dropped")
	}
	if resp.TransformedCase != nil {
		t.Error("transformed case present after a failed schema gate")
	}
}

func TestValidateCasePromotesWarnings(t *testing.T) {
	svc := newTestService(&fakeStore{})

	c := &appeal.Case{
		FormType: appeal.FormSscs1,
		Appeal: &appeal.Appeal{
			BenefitType: &appeal.BenefitType{Code: appeal.BenefitPIP},
			Appellant: &appeal.Appellant{
				Name: appeal.Name{Title: "Mr", LastName: "Bloggs"},
				Address: appeal.Address{
					Line1: "1 Appeal House", Town: "Cardiff", County: ".", Postcode: "CF24 0AB",
				},
				Identity: appeal.Identity{Nino: "JT012345B"},
			},
			Rep:         &appeal.Representative{HasRepresentative: appeal.No},
			MrnDetails:  &appeal.MrnDetails{DwpIssuingOffice: "DWP PIP (1)"},
			HearingType: appeal.HearingTypeOral,
		},
	}
	resp := svc.ValidateCase(context.Background(), c, appeal.EventType(""), true)
	found := false
	for _, e := range resp.Errors {
		if e == "Appellant first name is empty" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, case updates treat soft findings as blocking", resp.Errors)
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("warnings = %v", resp.Warnings)
	}
	if resp.Status != "" {
		t.Errorf("status = %q, case update responses carry no status", resp.Status)
	}
}

func TestValidateCaseChecksMrnByDefault(t *testing.T) {
	svc := newTestService(&fakeStore{})

	c := &appeal.Case{
		FormType: appeal.FormSscs1,
		Appeal: &appeal.Appeal{
			BenefitType: &appeal.BenefitType{Code: appeal.BenefitPIP},
			Appellant: &appeal.Appellant{
				Name: appeal.Name{Title: "Mr", FirstName: "Joe", LastName: "Bloggs"},
				Address: appeal.Address{
					Line1: "1 Appeal House", Town: "Cardiff", County: ".", Postcode: "CF24 0AB",
				},
				Identity: appeal.Identity{Nino: "JT012345B"},
			},
			Rep:         &appeal.Representative{HasRepresentative: appeal.No},
			MrnDetails:  &appeal.MrnDetails{DwpIssuingOffice: "DWP PIP (1)"},
			HearingType: appeal.HearingTypeOral,
		},
	}

	resp := svc.ValidateCase(context.Background(), c, appeal.EventType(""), false)
	found := false
	for _, e := range resp.Errors {
		if e == "mrn date is empty" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, missing reconsideration-notice date must block the update", resp.Errors)
	}

	resp = svc.ValidateCase(context.Background(), c, appeal.EventType(""), true)
	for _, e := range resp.Errors {
		if e == "mrn date is empty" {
			t.Errorf("errors = %v, ignoreMrn must skip the notice-date checks", resp.Errors)
		}
	}
}

func TestDecideEvent(t *testing.T) {
	svc := newTestService(&fakeStore{})
	grounds := &appeal.AppealReasons{Reasons: []appeal.AppealReason{{Description: "wrong decision"}}}

	newCase := func(mrnMonthsAgo int, reasons *appeal.AppealReasons) *appeal.Case {
		return &appeal.Case{Appeal: &appeal.Appeal{
			MrnDetails:    &appeal.MrnDetails{MrnDate: time.Now().AddDate(0, -mrnMonthsAgo, 0).Format("2006-01-02")},
			AppealReasons: reasons,
		}}
	}

	t.Run("recent notice without warnings", func(t *testing.T) {
		c := newCase(1, grounds)
		if got := svc.decideEvent(c, false); got != appeal.EventValidAppealCreated {
			t.Errorf("event = %q", got)
		}
	})

	t.Run("recent notice with warnings", func(t *testing.T) {
		c := newCase(1, grounds)
		if got := svc.decideEvent(c, true); got != appeal.EventIncompleteApplication {
			t.Errorf("event = %q", got)
		}
	})

	t.Run("old notice routes to interlocutory review", func(t *testing.T) {
		c := newCase(14, grounds)
		if got := svc.decideEvent(c, false); got != appeal.EventNonCompliant {
			t.Errorf("event = %q", got)
		}
		if c.InterlocReferralReason != appeal.InterlocOver13Months {
			t.Errorf("interloc reason = %q", c.InterlocReferralReason)
		}
	})

	t.Run("old notice without grounds", func(t *testing.T) {
		c := newCase(14, nil)
		if got := svc.decideEvent(c, true); got != appeal.EventNonCompliant {
			t.Errorf("event = %q", got)
		}
		if c.InterlocReferralReason != appeal.InterlocOver13MonthsAndGroundsMissing {
			t.Errorf("interloc reason = %q", c.InterlocReferralReason)
		}
	})

	t.Run("no notice date", func(t *testing.T) {
		c := &appeal.Case{Appeal: &appeal.Appeal{}}
		if got := svc.decideEvent(c, false); got != appeal.EventValidAppealCreated {
			t.Errorf("event = %q", got)
		}
	})
}

func TestGetCase(t *testing.T) {
	store := &fakeStore{byRef: &casestore.Record{CaseRef: "scan-9"}}
	svc := newTestService(store)
	rec, err := svc.GetCase(context.Background(), "scan-9")
	if err != nil {
		t.Fatal(err)
	}
	if rec == nil || rec.CaseRef != "scan-9" {
		t.Errorf("record = %+v", rec)
	}
}
