package layout

// Head field names for the quarterly corporate extract record.
const (
	FieldDocumentNumber = "document_number"
	FieldName           = "name"
	FieldStatus         = "status"
	FieldEntityType     = "entity_type"

	FieldPrincipalLine1   = "principal_line1"
	FieldPrincipalLine2   = "principal_line2"
	FieldPrincipalCity    = "principal_city"
	FieldPrincipalState   = "principal_state"
	FieldPrincipalZip     = "principal_zip"
	FieldPrincipalCountry = "principal_country"

	FieldMailingLine1   = "mailing_line1"
	FieldMailingLine2   = "mailing_line2"
	FieldMailingCity    = "mailing_city"
	FieldMailingState   = "mailing_state"
	FieldMailingZip     = "mailing_zip"
	FieldMailingCountry = "mailing_country"

	FieldFileDate = "file_date"

	FieldAgentName  = "agent_name"
	FieldAgentLine1 = "agent_line1"
	FieldAgentCity  = "agent_city"
	FieldAgentState = "agent_state"
	FieldAgentZip   = "agent_zip"

	FieldManagerName  = "manager_name"
	FieldManagerType  = "manager_type"
	FieldManagerLine1 = "manager_line1"
	FieldManagerCity  = "manager_city"
	FieldManagerState = "manager_state"
	FieldManagerZip   = "manager_zip"
)

// Officer stride field names.
const (
	FieldOfficerTitle = "officer_title"
	FieldOfficerFlag  = "officer_flag"
	FieldOfficerName  = "officer_name"
	FieldOfficerLine1 = "officer_line1"
	FieldOfficerCity  = "officer_city"
	FieldOfficerState = "officer_state"
	FieldOfficerZip   = "officer_zip"
)

// Default geometry of the quarterly extract. Widths are configuration, not
// contract: callers may build a Layout with different values via New.
const (
	DefaultTotalWidth  = 1440
	DefaultMaxOfficers = 5
)

// DefaultHeadFields returns the head field declarations of the quarterly
// extract record in column order.
func DefaultHeadFields() []Field {
	return []Field{
		{FieldDocumentNumber, 12},
		{FieldName, 192},
		{FieldStatus, 1},
		{FieldEntityType, 15},

		{FieldPrincipalLine1, 42},
		{FieldPrincipalLine2, 42},
		{FieldPrincipalCity, 28},
		{FieldPrincipalState, 2},
		{FieldPrincipalZip, 10},
		{FieldPrincipalCountry, 2},

		{FieldMailingLine1, 42},
		{FieldMailingLine2, 42},
		{FieldMailingCity, 28},
		{FieldMailingState, 2},
		{FieldMailingZip, 10},
		{FieldMailingCountry, 2},

		{FieldFileDate, 8},

		{FieldAgentName, 42},
		{FieldAgentLine1, 42},
		{FieldAgentCity, 28},
		{FieldAgentState, 2},
		{FieldAgentZip, 10},

		{FieldManagerName, 42},
		{FieldManagerType, 1},
		{FieldManagerLine1, 42},
		{FieldManagerCity, 28},
		{FieldManagerState, 2},
		{FieldManagerZip, 10},
	}
}

// DefaultOfficerFields returns the field declarations of one officer stride.
func DefaultOfficerFields() []Field {
	return []Field{
		{FieldOfficerTitle, 4},
		{FieldOfficerFlag, 1},
		{FieldOfficerName, 42},
		{FieldOfficerLine1, 42},
		{FieldOfficerCity, 28},
		{FieldOfficerState, 2},
		{FieldOfficerZip, 10},
	}
}

// Default returns the layout of the quarterly extract record.
func Default() *Layout {
	l, err := New(DefaultHeadFields(), DefaultOfficerFields(), DefaultMaxOfficers, DefaultTotalWidth)
	if err != nil {
		// The default geometry is validated by tests; this cannot happen.
		panic(err)
	}
	return l
}
