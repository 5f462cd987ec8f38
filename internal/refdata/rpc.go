package refdata

import (
	"strings"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
)

const (
	// HearingRouteGaps is the legacy listing route.
	HearingRouteGaps = "gaps"
	// HearingRouteListAssist is the listing route all IBC cases use.
	HearingRouteListAssist = "listAssist"
)

var rpcs = map[string]appeal.RegionalProcessingCentre{
	"birmingham": {
		Name: "BIRMINGHAM", Address1: "HM Courts & Tribunals Service", Address2: "Administrative Support Centre",
		City: "Birmingham", Postcode: "B16 6FR", Region: "Midlands", EpimsID: "231596", HearingRoute: HearingRouteGaps,
	},
	"bradford": {
		Name: "BRADFORD", Address1: "HM Courts & Tribunals Service", Address2: "Phoenix House",
		City: "Bradford", Postcode: "BD1 1LP", Region: "North East", EpimsID: "698118", HearingRoute: HearingRouteGaps,
	},
	"cardiff": {
		Name: "CARDIFF", Address1: "HM Courts & Tribunals Service", Address2: "Eastgate House",
		City: "Cardiff", Postcode: "CF24 0AB", Region: "Wales", EpimsID: "649000", HearingRoute: HearingRouteGaps,
	},
	"glasgow": {
		Name: "GLASGOW", Address1: "HM Courts & Tribunals Service", Address2: "Wellington House",
		City: "Glasgow", Postcode: "G2 8GT", Region: "Scotland", EpimsID: "371016", HearingRoute: HearingRouteGaps,
	},
	"leeds": {
		Name: "LEEDS", Address1: "HM Courts & Tribunals Service", Address2: "York House",
		City: "Leeds", Postcode: "LS1 2ED", Region: "North East", EpimsID: "455368", HearingRoute: HearingRouteGaps,
	},
	"liverpool": {
		Name: "LIVERPOOL", Address1: "HM Courts & Tribunals Service", Address2: "Prudential Buildings",
		City: "Liverpool", Postcode: "L2 5UZ", Region: "North West", EpimsID: "196538", HearingRoute: HearingRouteGaps,
	},
	"newcastle": {
		Name: "NEWCASTLE", Address1: "HM Courts & Tribunals Service", Address2: "Manor View House",
		City: "Newcastle-Upon-Tyne", Postcode: "NE12 8NB", Region: "North East", EpimsID: "366796", HearingRoute: HearingRouteGaps,
	},
	"sutton": {
		Name: "SUTTON", Address1: "HM Courts & Tribunals Service", Address2: "Copthall House",
		City: "Sutton", Postcode: "SM1 1DA", Region: "South East", EpimsID: "37792", HearingRoute: HearingRouteGaps,
	},
	"ibca": {
		Name: "IBCA", Address1: "HM Courts & Tribunals Service", Address2: "Phoenix House",
		City: "Bradford", Postcode: "BD1 1LP", Region: "North East", EpimsID: "698118", HearingRoute: HearingRouteListAssist,
	},
}

// Outward-code areas to centre keys. The leading letters of the postcode
// decide the centre; longer prefixes win over shorter ones.
var postcodeAreas = map[string]string{
	"b": "birmingham", "cv": "birmingham", "dy": "birmingham", "st": "birmingham", "wv": "birmingham",
	"bd": "bradford", "hd": "bradford", "hx": "bradford", "hg": "bradford",
	"cf": "cardiff", "ll": "cardiff", "np": "cardiff", "sa": "cardiff", "sy": "cardiff",
	"g": "glasgow", "eh": "glasgow", "ab": "glasgow", "dd": "glasgow", "ka": "glasgow", "ml": "glasgow", "pa": "glasgow",
	"ls": "leeds", "wf": "leeds", "yo": "leeds", "dn": "leeds", "s": "leeds",
	"l": "liverpool", "ch": "liverpool", "pr": "liverpool", "wa": "liverpool", "wn": "liverpool", "m": "liverpool", "fy": "liverpool",
	"ne": "newcastle", "sr": "newcastle", "ts": "newcastle", "dh": "newcastle", "ca": "newcastle",
	"sm": "sutton", "cr": "sutton", "br": "sutton", "kt": "sutton", "tn": "sutton", "rh": "sutton",
	"sw": "sutton", "se": "sutton", "e": "sutton", "ec": "sutton", "n": "sutton", "nw": "sutton", "w": "sutton", "wc": "sutton",
}

// RpcByPostcode resolves the regional processing centre for a postcode.
// IBC cases route to the dedicated centre regardless of postcode, which
// lets port-of-entry values through too.
func RpcByPostcode(postcode string, ibc bool) (appeal.RegionalProcessingCentre, bool) {
	if ibc {
		return rpcs["ibca"], true
	}
	area := strings.ToLower(strings.TrimSpace(postcode))
	letters := area
	for i, r := range area {
		if r >= '0' && r <= '9' {
			letters = area[:i]
			break
		}
	}
	if key, ok := postcodeAreas[letters]; ok {
		return rpcs[key], true
	}
	if len(letters) > 1 {
		if key, ok := postcodeAreas[letters[:1]]; ok {
			return rpcs[key], true
		}
	}
	return appeal.RegionalProcessingCentre{}, false
}
