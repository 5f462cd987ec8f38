package appeal

// ValidationStatus summarises the outcome of a transform or validation
// pass.
type ValidationStatus string

const (
	StatusValid    ValidationStatus = "Valid"
	StatusWarnings ValidationStatus = "Warnings"
	StatusErrors   ValidationStatus = "Errors"
)

// Findings accumulates errors and warnings in encounter order, deduplicating
// exact repeats. Every step that can reject or flag input appends here; the
// accumulator is threaded explicitly through the pipeline so a single
// request owns its own findings.
type Findings struct {
	errors   []string
	warnings []string
	errSeen  map[string]struct{}
	warnSeen map[string]struct{}
}

func NewFindings() *Findings {
	return &Findings{
		errSeen:  make(map[string]struct{}),
		warnSeen: make(map[string]struct{}),
	}
}

func (f *Findings) AddError(msg string) {
	if msg == "" {
		return
	}
	if _, ok := f.errSeen[msg]; ok {
		return
	}
	f.errSeen[msg] = struct{}{}
	f.errors = append(f.errors, msg)
}

func (f *Findings) AddWarning(msg string) {
	if msg == "" {
		return
	}
	if _, ok := f.warnSeen[msg]; ok {
		return
	}
	f.warnSeen[msg] = struct{}{}
	f.warnings = append(f.warnings, msg)
}

func (f *Findings) AddErrors(msgs ...string) {
	for _, m := range msgs {
		f.AddError(m)
	}
}

func (f *Findings) AddWarnings(msgs ...string) {
	for _, m := range msgs {
		f.AddWarning(m)
	}
}

func (f *Findings) HasErrors() bool   { return len(f.errors) > 0 }
func (f *Findings) HasWarnings() bool { return len(f.warnings) > 0 }

// Errors returns a copy of the accumulated errors in encounter order.
func (f *Findings) Errors() []string {
	out := make([]string, len(f.errors))
	copy(out, f.errors)
	return out
}

// Warnings returns a copy of the accumulated warnings in encounter order.
func (f *Findings) Warnings() []string {
	out := make([]string, len(f.warnings))
	copy(out, f.warnings)
	return out
}

// Combine demotes every error to a warning, preserving warning order with
// demoted errors appended after the existing warnings. Calling it twice is
// a no-op the second time.
func (f *Findings) Combine() {
	for _, e := range f.errors {
		f.AddWarning(e)
	}
	f.errors = nil
	f.errSeen = make(map[string]struct{})
}

// PromoteWarnings turns warnings into errors, except warnings for which
// keep returns true, which stay as warnings. Used on the case-update path
// where most soft findings become blocking.
func (f *Findings) PromoteWarnings(keep func(string) bool) {
	var kept []string
	keptSeen := make(map[string]struct{})
	for _, w := range f.warnings {
		if keep != nil && keep(w) {
			kept = append(kept, w)
			keptSeen[w] = struct{}{}
			continue
		}
		f.AddError(w)
	}
	f.warnings = kept
	f.warnSeen = keptSeen
}

// Status derives the overall outcome: any error wins over any warning.
func (f *Findings) Status() ValidationStatus {
	if f.HasErrors() {
		return StatusErrors
	}
	if f.HasWarnings() {
		return StatusWarnings
	}
	return StatusValid
}

// CaseResponse is the outcome of a transform or validation pass over one
// scanned payload.
type CaseResponse struct {
	TransformedCase *Case            `json:"transformedCase,omitempty"`
	Errors          []string         `json:"errors,omitempty"`
	Warnings        []string         `json:"warnings,omitempty"`
	Status          ValidationStatus `json:"status"`
}

// Response snapshots the findings into a CaseResponse for the given case.
func (f *Findings) Response(c *Case) CaseResponse {
	return CaseResponse{
		TransformedCase: c,
		Errors:          f.Errors(),
		Warnings:        f.Warnings(),
		Status:          f.Status(),
	}
}

// EventType identifies the case event an accepted intake creates.
type EventType string

const (
	EventIncompleteApplication EventType = "incompleteApplicationReceived"
	EventNonCompliant          EventType = "nonCompliant"
	EventValidAppealCreated    EventType = "validAppealCreated"
)

const (
	InterlocOver13Months                  = "over13months"
	InterlocOver13MonthsAndGroundsMissing = "over13MonthsAndGroundsMissing"
)
