// Package postcode checks appellant postcodes, first against the UK
// format and then, when enabled, against a lookup service that knows
// which postcodes actually exist.
package postcode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var formatRe = regexp.MustCompile(`(?i)^((GIR 0AA)|((([A-Z][0-9][0-9]?)|(([A-Z][A-HJ-Y][0-9][0-9]?)|(([A-Z][0-9][A-Z])|([A-Z][A-HJ-Y][0-9][A-Z]?))))\s?[0-9][A-Z]{2}))$`)

// Config controls the existence lookup. When disabled only the format
// check runs.
type Config struct {
	Enabled       bool
	URL           string
	TestPostcodes []string
	Timeout       time.Duration
}

type Verifier struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

func NewVerifier(cfg Config, log zerolog.Logger) *Verifier {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Verifier{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log.With().Str("component", "postcode").Logger(),
	}
}

// ValidFormat checks the UK postcode shape without consulting the lookup
// service.
func (v *Verifier) ValidFormat(postcode string) bool {
	return formatRe.MatchString(strings.TrimSpace(postcode))
}

// Exists checks the postcode against the lookup service. Test postcodes
// pass without a call, and lookup failures fail closed so a bad postcode
// never slips through on an outage.
func (v *Verifier) Exists(ctx context.Context, postcode string) bool {
	postcode = strings.TrimSpace(postcode)
	if !v.cfg.Enabled {
		return true
	}
	for _, tp := range v.cfg.TestPostcodes {
		if strings.EqualFold(tp, postcode) {
			return true
		}
	}
	url := strings.ReplaceAll(v.cfg.URL, "{postcode}", strings.ReplaceAll(postcode, " ", ""))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		v.log.Warn().Err(err).Str("postcode", postcode).Msg("postcode lookup request failed")
		return false
	}
	resp, err := v.client.Do(req)
	if err != nil {
		v.log.Warn().Err(err).Str("postcode", postcode).Msg("postcode lookup unreachable")
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode != http.StatusOK {
		v.log.Warn().Int("status", resp.StatusCode).Str("postcode", postcode).
			Msg(fmt.Sprintf("postcode lookup returned %d", resp.StatusCode))
		return false
	}
	return true
}
