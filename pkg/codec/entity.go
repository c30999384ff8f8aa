package codec

import "time"

// Status is the filing status column of an entity record.
type Status int

const (
	// StatusUnknown covers status codes this build does not recognize.
	// Registries introduce new codes over time; decoding never fails on them.
	StatusUnknown Status = iota
	StatusActive
	StatusInactive
)

// ParseStatus maps a one-character status code to its Status value.
// Unrecognized codes, including blank, map to StatusUnknown.
func ParseStatus(code string) Status {
	switch code {
	case "A":
		return StatusActive
	case "I":
		return StatusInactive
	default:
		return StatusUnknown
	}
}

// Code returns the one-character column value for the status.
// StatusUnknown has no code and encodes as blank.
func (s Status) Code() string {
	switch s {
	case StatusActive:
		return "A"
	case StatusInactive:
		return "I"
	default:
		return ""
	}
}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusInactive:
		return "INACTIVE"
	default:
		return "UNKNOWN"
	}
}

// Address is a fixed-width postal address block. Values are upper-case by
// registry convention but not enforced. Blocks that carry fewer columns
// (officer and agent addresses have no second line or country) leave the
// extra fields empty.
type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Officer is one entry of the record's repeating tail region.
type Officer struct {
	Title   string // role code, e.g. PRES, VICE, TREA, SECR
	Flag    string // one-character officer flag
	Name    string
	Address Address
}

// Agent is the registered agent block of a record.
type Agent struct {
	Name    string
	Address Address
}

// PropertyManager is the property manager block of a record.
type PropertyManager struct {
	Name    string
	Type    string // one-character manager type flag
	Address Address
}

// Entity is the decoded form of one fixed-width registry record.
// Values are constructed either by RecordCodec.Decode or explicitly before
// encoding, and are not mutated afterwards; producing a changed entity means
// building a new value.
type Entity struct {
	// DocumentNumber is the registry's stable identifier. It may be empty
	// for unmatched records; when present it is unique within a batch.
	DocumentNumber string
	Name           string
	Status         Status
	EntityType     string

	PrincipalAddress Address
	MailingAddress   Address

	// FileDate is the original filing date. The zero time means the
	// column was blank or unparseable.
	FileDate time.Time

	RegisteredAgent Agent
	PropertyManager PropertyManager

	// Officers is the ordered contents of the trailing stride region.
	Officers []Officer
}
