// Package bulkscan wires the intake pipeline together: transform the
// scanned payload, validate the result, decide the case event and persist
// accepted cases.
package bulkscan

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/ocr"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/transform"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/validate"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/casestore"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/refdata"
)

const (
	issueCodeDefault = "DD"
	gapsReadyToList  = "readyToList"
	caseDateLayout   = "2006-01-02"
)

type Service struct {
	transformer *transform.Transformer
	validator   *validate.Validator
	store       casestore.Store
	log         zerolog.Logger
}

func NewService(transformer *transform.Transformer, validator *validate.Validator,
	store casestore.Store, log zerolog.Logger) *Service {

	return &Service{
		transformer: transformer,
		validator:   validator,
		store:       store,
		log:         log.With().Str("component", "bulkscan").Logger(),
	}
}

// TransformRecord runs the full intake for one scanned payload. Errors
// stop the case outright; warnings stop it unless the caller asked to
// ignore them, and an automated caller can never ignore them. Accepted
// cases are annotated with the listing codes and persisted.
func (s *Service) TransformRecord(ctx context.Context, payload *ocr.ScanPayload) appeal.CaseResponse {
	resp := s.transformer.Transform(ctx, payload, false)
	if resp.Status == appeal.StatusErrors {
		return resp
	}

	f := appeal.NewFindings()
	f.AddWarnings(resp.Warnings...)

	acc := ocr.NewAccessor(payload.FieldMap())
	c := resp.TransformedCase
	s.validator.Validate(ctx, f, acc, c, validate.Options{
		Mode:            validate.ModeIntake,
		IgnoreWarnings:  payload.IgnoreWarnings,
		IgnorePartyRole: true,
	})

	if f.HasErrors() {
		s.log.Info().Str("case_id", payload.ID).Strs("errors", f.Errors()).
			Msg("validation errors, case not created")
		return f.Response(c)
	}
	if f.HasWarnings() && (payload.IsAutomatedProcess || !payload.IgnoreWarnings) {
		s.log.Info().Str("case_id", payload.ID).Strs("warnings", f.Warnings()).
			Msg("validation warnings, case not created")
		return f.Response(c)
	}

	event := s.decideEvent(c, f.HasWarnings())
	s.finaliseCase(c, payload.ID)

	if err := s.persist(ctx, c, event); err != nil {
		s.log.Error().Err(err).Str("case_id", payload.ID).Msg("persisting case failed")
		f.AddError("Internal error, case could not be saved")
		return f.Response(c)
	}

	s.log.Info().Str("case_id", payload.ID).Str("case_ref", c.BulkScanCaseReference).
		Str("event", string(event)).Msg("case created")
	return f.Response(c)
}

// ValidateRecord checks a payload without creating anything. Transform
// errors are reported as warnings so the caller sees the whole picture
// in one pass.
func (s *Service) ValidateRecord(ctx context.Context, payload *ocr.ScanPayload) appeal.CaseResponse {
	resp := s.transformer.Transform(ctx, payload, true)
	if len(resp.Errors) > 0 {
		// Schema violations short-circuit before the warning merge and
		// must stay blocking.
		return resp
	}

	f := appeal.NewFindings()
	f.AddWarnings(resp.Warnings...)

	if resp.TransformedCase == nil {
		return f.Response(nil)
	}

	acc := ocr.NewAccessor(payload.FieldMap())
	s.validator.Validate(ctx, f, acc, resp.TransformedCase, validate.Options{
		Mode:            validate.ModeIntake,
		IgnorePartyRole: true,
	})
	return f.Response(resp.TransformedCase)
}

// ValidateCase validates an already transformed case on behalf of a case
// update. Soft findings become blocking here, except a postcode that the
// lookup service does not know, which stays advisory.
func (s *Service) ValidateCase(ctx context.Context, c *appeal.Case, event appeal.EventType, ignoreMrn bool) appeal.CaseResponse {
	f := appeal.NewFindings()
	acc := ocr.NewAccessor(nil)

	s.validator.Validate(ctx, f, acc, c, validate.Options{
		Mode:      validate.ModeCaseUpdate,
		IgnoreMrn: ignoreMrn,
		Event:     event,
	})

	f.PromoteWarnings(func(w string) bool {
		return strings.HasSuffix(w, "is not a valid postcode")
	})

	return appeal.CaseResponse{
		TransformedCase: c,
		Errors:          f.Errors(),
		Warnings:        f.Warnings(),
	}
}

// GetCase loads a stored case by its reference.
func (s *Service) GetCase(ctx context.Context, caseRef string) (*casestore.Record, error) {
	return s.store.GetByRef(ctx, caseRef)
}

// decideEvent picks the creation event. A reconsideration notice older
// than thirteen months routes the case to interlocutory review; any
// accepted warning downgrades it to an incomplete application.
func (s *Service) decideEvent(c *appeal.Case, hasWarnings bool) appeal.EventType {
	if mrn, ok := ocr.ParseCaseDate(c.MrnDate()); ok {
		if mrn.Before(time.Now().AddDate(0, -13, 0)) {
			c.InterlocReferralReason = appeal.InterlocOver13Months
			if c.Appeal != nil && c.Appeal.AppealReasons.IsEmpty() {
				c.InterlocReferralReason = appeal.InterlocOver13MonthsAndGroundsMissing
			}
			return appeal.EventNonCompliant
		}
	}
	if hasWarnings {
		return appeal.EventIncompleteApplication
	}
	return appeal.EventValidAppealCreated
}

// finaliseCase sets the fields a created case needs beyond the transform
// output: the listing codes, the issuing office's regional centre and
// the creation stamp.
func (s *Service) finaliseCase(c *appeal.Case, caseID string) {
	c.CreatedInGapsFrom = gapsReadyToList
	c.CaseCreated = time.Now().Format(caseDateLayout)
	c.BulkScanCaseReference = caseID

	if b := appeal.BenefitByCode(c.BenefitCodeValue()); b != nil {
		c.BenefitCode = b.CaseLoaderCode
		c.IssueCode = issueCodeDefault
		c.CaseCode = b.CaseLoaderCode + issueCodeDefault
	}

	if c.Appeal != nil && c.Appeal.MrnDetails != nil && c.Appeal.MrnDetails.DwpIssuingOffice != "" {
		if m, ok := refdata.OfficeFor(c.BenefitCodeValue(), c.Appeal.MrnDetails.DwpIssuingOffice); ok {
			c.DwpRegionalCentre = m.RegionalCentre
		}
	}
}

func (s *Service) persist(ctx context.Context, c *appeal.Case, event appeal.EventType) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	caseRef := c.BulkScanCaseReference
	if caseRef == "" {
		caseRef = uuid.NewString()
	}
	return s.store.Create(ctx, &casestore.Record{
		CaseRef:     caseRef,
		Nino:        appeal.NormaliseNino(c.Nino()),
		BenefitCode: c.BenefitCodeValue(),
		MrnDate:     c.MrnDate(),
		FormType:    string(c.FormType),
		Event:       string(event),
		Data:        data,
	})
}
