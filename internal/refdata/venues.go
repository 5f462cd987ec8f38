package refdata

import "strings"

// Venue is the processing venue a case is heard at, paired with the
// location identifiers case management needs.
type Venue struct {
	Name         string
	Region       string
	EpimsID      string
	RegionalCode string
}

var venuesByRpc = map[string]Venue{
	"BIRMINGHAM": {Name: "Birmingham", Region: "Midlands", EpimsID: "231596", RegionalCode: "5"},
	"BRADFORD":   {Name: "Bradford", Region: "North East", EpimsID: "698118", RegionalCode: "3"},
	"CARDIFF":    {Name: "Cardiff", Region: "Wales", EpimsID: "649000", RegionalCode: "7"},
	"GLASGOW":    {Name: "Glasgow", Region: "Scotland", EpimsID: "371016", RegionalCode: "1"},
	"LEEDS":      {Name: "Leeds", Region: "North East", EpimsID: "455368", RegionalCode: "3"},
	"LIVERPOOL":  {Name: "Liverpool", Region: "North West", EpimsID: "196538", RegionalCode: "2"},
	"NEWCASTLE":  {Name: "Newcastle", Region: "North East", EpimsID: "366796", RegionalCode: "3"},
	"SUTTON":     {Name: "Sutton", Region: "South East", EpimsID: "37792", RegionalCode: "4"},
	"IBCA":       {Name: "Bradford", Region: "North East", EpimsID: "698118", RegionalCode: "3"},
}

// VenueFor picks the processing venue for an appellant postcode (or port
// of entry on IBC cases) and benefit.
func VenueFor(postcodeOrPort, benefitCode string, ibc bool) (Venue, bool) {
	rpc, ok := RpcByPostcode(postcodeOrPort, ibc)
	if !ok {
		return Venue{}, false
	}
	v, ok := venuesByRpc[strings.ToUpper(rpc.Name)]
	return v, ok
}
