// Package benefit resolves the benefit type of a scanned appeal, either
// from free-text OCR values or from the tick-one indicator checkboxes on
// the newer form layouts.
package benefit

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
)

const (
	matchThreshold = 90
	fuzzyPadLength = 4
)

// Free-text values that are too generic to resolve on their own.
var excludedWords = map[string]struct{}{
	"support":   {},
	"allowance": {},
	"benefit":   {},
	"pension":   {},
	"":          {},
}

type wordMatch struct {
	word string
	code string
}

var exactWordMatches = []wordMatch{
	{"AA", appeal.BenefitAttendanceAllow},
	{"IS", appeal.BenefitIncomeSupport},
	{"SF", appeal.BenefitSocialFund},
	{"PC", appeal.BenefitPensionCredit},
	{"RP", appeal.BenefitRetirementPension},
	{"BB", appeal.BenefitBereavement},
	{"CA", appeal.BenefitCarersAllowance},
	{"MA", appeal.BenefitMaternityAllow},
	{"IIDB", appeal.BenefitIIDB},
	{"BSPS", appeal.BenefitBSPS},
	{"Credit", appeal.BenefitUC},
	{"IDB", appeal.BenefitIndustrialDeath},
}

var containsWordMatches = []wordMatch{
	{"personal", appeal.BenefitPIP},
	{"independence", appeal.BenefitPIP},
	{"universal", appeal.BenefitUC},
	{"employment", appeal.BenefitESA},
	{"attendance", appeal.BenefitAttendanceAllow},
	{"disability", appeal.BenefitDLA},
	{"living", appeal.BenefitDLA},
	{"livi", appeal.BenefitDLA},
	{"livin", appeal.BenefitDLA},
	{"income", appeal.BenefitIncomeSupport},
	{"inco", appeal.BenefitIncomeSupport},
	{"incom", appeal.BenefitIncomeSupport},
	{"death", appeal.BenefitIndustrialDeath},
	{"deat", appeal.BenefitIndustrialDeath},
	{"retirement", appeal.BenefitRetirementPension},
	{"reti", appeal.BenefitRetirementPension},
	{"retir", appeal.BenefitRetirementPension},
	{"retire", appeal.BenefitRetirementPension},
	{"retirem", appeal.BenefitRetirementPension},
	{"retireme", appeal.BenefitRetirementPension},
	{"retiremen", appeal.BenefitRetirementPension},
	{"injuries", appeal.BenefitIIDB},
	{"disablement", appeal.BenefitIIDB},
	{"iidb", appeal.BenefitIIDB},
	{"job", appeal.BenefitJSA},
	{"seeker", appeal.BenefitJSA},
	{"seeker's", appeal.BenefitJSA},
	{"seekers", appeal.BenefitJSA},
	{"social", appeal.BenefitSocialFund},
	{"fund", appeal.BenefitSocialFund},
	{"carer's", appeal.BenefitCarersAllowance},
	{"care", appeal.BenefitCarersAllowance},
	{"carers", appeal.BenefitCarersAllowance},
	{"maternity", appeal.BenefitMaternityAllow},
	{"mate", appeal.BenefitMaternityAllow},
	{"mater", appeal.BenefitMaternityAllow},
	{"matern", appeal.BenefitMaternityAllow},
	{"materni", appeal.BenefitMaternityAllow},
	{"maternit", appeal.BenefitMaternityAllow},
	{"bsps", appeal.BenefitBSPS},
}

var nonAlphaNumeric = regexp.MustCompile(`[^A-Za-z0-9 ]`)

// Matcher resolves free-text benefit descriptions to catalogue codes.
type Matcher struct {
	log zerolog.Logger
}

func NewMatcher(log zerolog.Logger) *Matcher {
	return &Matcher{log: log.With().Str("component", "benefit-matcher").Logger()}
}

// Match resolves a raw OCR benefit value to a catalogue code. Unresolvable
// values are returned unchanged so validation can report them verbatim.
func (m *Matcher) Match(caseID, raw string) string {
	search := strings.TrimSpace(nonAlphaNumeric.ReplaceAllString(raw, ""))
	if _, excluded := excludedWords[strings.ToLower(search)]; excluded {
		m.log.Info().Str("case_id", caseID).Str("value", raw).
			Msg("benefit value matches the unknown word list, cannot resolve")
		return raw
	}
	if b := m.exactMatch(search); b != nil {
		return b.Code
	}
	if b := m.containsMatch(caseID, search); b != nil {
		return b.Code
	}
	if b := m.fuzzyMatch(caseID, search); b != nil {
		return b.Code
	}
	return raw
}

func (m *Matcher) exactMatch(code string) *appeal.Benefit {
	if b := appeal.BenefitByCode(code); b != nil {
		return b
	}
	if b := appeal.BenefitByDescription(code); b != nil {
		return b
	}
	for _, w := range exactWordMatches {
		if strings.EqualFold(w.word, code) {
			return appeal.BenefitByCode(w.code)
		}
	}
	return nil
}

func (m *Matcher) containsMatch(caseID, code string) *appeal.Benefit {
	words := strings.Fields(strings.ToLower(code))
	has := func(w string) bool {
		for _, cw := range words {
			if cw == w {
				return true
			}
		}
		return false
	}
	var codes []string
	seen := map[string]struct{}{}
	for _, w := range containsWordMatches {
		if has(w.word) {
			if _, dup := seen[w.code]; !dup {
				seen[w.code] = struct{}{}
				codes = append(codes, w.code)
			}
		}
	}
	if len(codes) == 1 {
		m.log.Info().Str("case_id", caseID).Str("value", code).Str("benefit", codes[0]).
			Msg("benefit value contains a word matching a single benefit")
		return appeal.BenefitByCode(codes[0])
	}
	if len(codes) > 1 {
		m.log.Warn().Str("case_id", caseID).Str("value", code).Strs("benefits", codes).
			Msg("benefit value matches multiple benefits, not resolving")
	}
	return nil
}

func (m *Matcher) fuzzyMatch(caseID, code string) *appeal.Benefit {
	bestScore := -1
	var best *appeal.Benefit
	bestChoice := ""
	for i := range appeal.Benefits() {
		b := appeal.Benefits()[i]
		if b.SscsType != appeal.TypeSscs1 {
			continue
		}
		for _, choice := range []string{pad(b.Code), pad(b.Description)} {
			if len(choice) < fuzzyPadLength {
				continue
			}
			if score := ratio(code, choice); score > bestScore {
				bestScore = score
				best = appeal.BenefitByCode(b.Code)
				bestChoice = choice
			}
		}
	}
	m.log.Info().Str("case_id", caseID).Str("value", code).Str("choice", bestChoice).
		Int("score", bestScore).Int("threshold", matchThreshold).
		Msg("fuzzy benefit match")
	if bestScore < matchThreshold {
		return nil
	}
	return best
}

func pad(s string) string {
	for len(s) < fuzzyPadLength {
		s += " "
	}
	return s
}

// ratio is a Levenshtein similarity score on 0..100, case-insensitive.
func ratio(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 100
	}
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	dist := prev[lb]
	longest := la
	if lb > longest {
		longest = lb
	}
	return (longest - dist) * 100 / longest
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
