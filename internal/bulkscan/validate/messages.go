package validate

import "strings"

// Mode selects how findings are phrased and which checks run. Intake
// validation speaks in OCR field names; case-update validation speaks in
// case field names.
type Mode int

const (
	ModeIntake Mode = iota
	ModeCaseUpdate
)

const (
	isEmpty          = "is empty"
	isInvalid        = "is invalid"
	isMissing        = "is missing"
	areEmpty         = "are empty"
	isInFuture       = "is in future"
	isInPast         = "is in past"
	notValidPostcode = "is not a valid postcode"

	hasRepresentativeMissing = `The "Has representative" field is not selected, please select an option to proceed`
	portOfEntryInvalid       = "person1_port_of_entry is not a valid port of entry code"
)

const (
	roleAppellant  = "APPELLANT"
	roleAppointee  = "APPOINTEE"
	roleRep        = "REPRESENTATIVE"
	roleOtherParty = "OTHER_PARTY"
)

var roleLabels = map[string]string{
	roleAppellant:  "Appellant",
	roleAppointee:  "Appointee",
	roleRep:        "Representative",
	roleOtherParty: "Other party",
}

// fieldName phrases a field reference for the mode: the raw OCR name on
// intake, the role-qualified case name on case update.
func fieldName(m Mode, personType, role, field string) string {
	if m == ModeIntake {
		if personType == "" {
			return field
		}
		return personType + "_" + field
	}
	label := roleLabels[role]
	if label == "" {
		return strings.ReplaceAll(field, "_", " ")
	}
	return label + " " + strings.ReplaceAll(field, "_", " ")
}
