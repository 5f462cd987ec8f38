package refdata

import "strings"

// UK ports of entry accepted on infected blood compensation appeals where
// the appellant lives outside the mainland UK. Keys are the location
// codes written on the form.
var portsOfEntry = map[string]string{
	"GB000434": "Belfast Docks",
	"GB000041": "Birmingham Airport",
	"GB000290": "Bristol Airport",
	"GB000162": "Cardiff Airport",
	"GB000170": "Dover",
	"GB000235": "East Midlands Airport",
	"GB000126": "Edinburgh Airport",
	"GB000296": "Gatwick Airport",
	"GB000128": "Glasgow Airport",
	"GB000250": "Harwich",
	"GB000072": "Heathrow Airport",
	"GB000074": "Hull",
	"GB000309": "Leeds Bradford Airport",
	"GB000084": "Liverpool Seaport",
	"GB003010": "London City Airport",
	"GB000085": "London Gateway",
	"GB000112": "Luton Airport",
	"GB000218": "Manchester Airport",
	"GB000096": "Newcastle Airport",
	"GB000098": "Newhaven",
	"GB000105": "Plymouth",
	"GB000111": "Poole",
	"GB000119": "Portsmouth",
	"GB000113": "Ramsgate",
	"GB000195": "Southampton",
	"GB000247": "Stansted Airport",
	"GB005160": "Teesport",
}

// ValidPortOfEntry reports whether the code names a known UK port.
func ValidPortOfEntry(code string) bool {
	_, ok := portsOfEntry[strings.TrimSpace(code)]
	return ok
}

// PortOfEntryName returns the display name for a port code.
func PortOfEntryName(code string) (string, bool) {
	name, ok := portsOfEntry[strings.TrimSpace(code)]
	return name, ok
}
