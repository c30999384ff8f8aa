package codec

import (
	"fmt"
	"strings"
	"time"

	"github.com/corpdata/registryd/pkg/layout"
)

// fileDateFormat is the MMDDYYYY filing date column format.
const fileDateFormat = "01022006"

// FormatKind classifies a FormatError.
type FormatKind int

const (
	// KindLengthMismatch means a decode input line was not exactly the
	// layout's declared total width.
	KindLengthMismatch FormatKind = iota
)

// FormatError reports a malformed input record. It is reported per record;
// the caller decides whether to skip the record or halt the batch.
type FormatError struct {
	Kind    FormatKind
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// RecordCodec maps between one fixed-width text line and one Entity value,
// using a layout for field offsets. A codec is stateless: Decode and Encode
// are independent per record and safe to call concurrently.
type RecordCodec struct {
	layout *layout.Layout
}

// NewRecordCodec creates a codec over the given layout.
func NewRecordCodec(l *layout.Layout) *RecordCodec {
	return &RecordCodec{layout: l}
}

// Layout returns the layout the codec encodes against.
func (c *RecordCodec) Layout() *layout.Layout {
	return c.layout
}

// Decode parses one fixed-width record line (trailing newline already
// stripped) into an Entity. The line must be exactly the layout's total
// width, otherwise a FormatError with KindLengthMismatch is returned.
//
// Head field values are trimmed of trailing padding only; embedded spaces
// are preserved. The officer tail is walked in strides from the end of the
// head region until the maximum count is reached or a stride with a blank
// title field is seen. Officers are never sparse, so a blank stride ends
// the list.
func (c *RecordCodec) Decode(line string) (Entity, error) {
	if len(line) != c.layout.TotalWidth() {
		return Entity{}, &FormatError{
			Kind:    KindLengthMismatch,
			Message: fmt.Sprintf("record length %d does not match declared width %d", len(line), c.layout.TotalWidth()),
		}
	}

	head := func(name string) string {
		off := c.layout.Offset(name)
		return strings.TrimRight(line[off:off+c.layout.Width(name)], " ")
	}

	e := Entity{
		DocumentNumber: head(layout.FieldDocumentNumber),
		Name:           head(layout.FieldName),
		Status:         ParseStatus(head(layout.FieldStatus)),
		EntityType:     head(layout.FieldEntityType),
		PrincipalAddress: Address{
			Line1:      head(layout.FieldPrincipalLine1),
			Line2:      head(layout.FieldPrincipalLine2),
			City:       head(layout.FieldPrincipalCity),
			State:      head(layout.FieldPrincipalState),
			PostalCode: head(layout.FieldPrincipalZip),
			Country:    head(layout.FieldPrincipalCountry),
		},
		MailingAddress: Address{
			Line1:      head(layout.FieldMailingLine1),
			Line2:      head(layout.FieldMailingLine2),
			City:       head(layout.FieldMailingCity),
			State:      head(layout.FieldMailingState),
			PostalCode: head(layout.FieldMailingZip),
			Country:    head(layout.FieldMailingCountry),
		},
		FileDate: parseFileDate(head(layout.FieldFileDate)),
		RegisteredAgent: Agent{
			Name: head(layout.FieldAgentName),
			Address: Address{
				Line1:      head(layout.FieldAgentLine1),
				City:       head(layout.FieldAgentCity),
				State:      head(layout.FieldAgentState),
				PostalCode: head(layout.FieldAgentZip),
			},
		},
		PropertyManager: PropertyManager{
			Name: head(layout.FieldManagerName),
			Type: head(layout.FieldManagerType),
			Address: Address{
				Line1:      head(layout.FieldManagerLine1),
				City:       head(layout.FieldManagerCity),
				State:      head(layout.FieldManagerState),
				PostalCode: head(layout.FieldManagerZip),
			},
		},
	}

	for i := 0; i < c.layout.MaxOfficers(); i++ {
		base := c.layout.OfficerOffset(i)
		field := func(name string) string {
			off := base + c.layout.StrideOffset(name)
			return strings.TrimRight(line[off:off+c.layout.StrideWidth(name)], " ")
		}

		title := field(layout.FieldOfficerTitle)
		if strings.TrimSpace(title) == "" {
			break
		}

		e.Officers = append(e.Officers, Officer{
			Title: title,
			Flag:  field(layout.FieldOfficerFlag),
			Name:  field(layout.FieldOfficerName),
			Address: Address{
				Line1:      field(layout.FieldOfficerLine1),
				City:       field(layout.FieldOfficerCity),
				State:      field(layout.FieldOfficerState),
				PostalCode: field(layout.FieldOfficerZip),
			},
		})
	}

	return e, nil
}

// Encode serializes an Entity into one fixed-width record line. Values
// longer than their column are hard-truncated, shorter values are padded
// with spaces on the right; encoding never fails. Officers are written in
// order, blank strides fill the region up to the layout's maximum count,
// and the result is always exactly the layout's total width.
func (c *RecordCodec) Encode(e Entity) string {
	var b strings.Builder
	b.Grow(c.layout.TotalWidth())

	for _, f := range c.layout.HeadFields() {
		b.WriteString(pad(c.headValue(e, f.Name), f.Width))
	}

	for i := 0; i < c.layout.MaxOfficers(); i++ {
		if i >= len(e.Officers) {
			b.WriteString(strings.Repeat(" ", c.layout.Stride()))
			continue
		}
		o := e.Officers[i]
		for _, f := range c.layout.OfficerFields() {
			b.WriteString(pad(officerValue(o, f.Name), f.Width))
		}
	}

	if b.Len() < c.layout.TotalWidth() {
		b.WriteString(strings.Repeat(" ", c.layout.TotalWidth()-b.Len()))
	}
	return b.String()
}

func (c *RecordCodec) headValue(e Entity, name string) string {
	switch name {
	case layout.FieldDocumentNumber:
		return e.DocumentNumber
	case layout.FieldName:
		return e.Name
	case layout.FieldStatus:
		return e.Status.Code()
	case layout.FieldEntityType:
		return e.EntityType

	case layout.FieldPrincipalLine1:
		return e.PrincipalAddress.Line1
	case layout.FieldPrincipalLine2:
		return e.PrincipalAddress.Line2
	case layout.FieldPrincipalCity:
		return e.PrincipalAddress.City
	case layout.FieldPrincipalState:
		return e.PrincipalAddress.State
	case layout.FieldPrincipalZip:
		return e.PrincipalAddress.PostalCode
	case layout.FieldPrincipalCountry:
		return e.PrincipalAddress.Country

	case layout.FieldMailingLine1:
		return e.MailingAddress.Line1
	case layout.FieldMailingLine2:
		return e.MailingAddress.Line2
	case layout.FieldMailingCity:
		return e.MailingAddress.City
	case layout.FieldMailingState:
		return e.MailingAddress.State
	case layout.FieldMailingZip:
		return e.MailingAddress.PostalCode
	case layout.FieldMailingCountry:
		return e.MailingAddress.Country

	case layout.FieldFileDate:
		if e.FileDate.IsZero() {
			return ""
		}
		return e.FileDate.Format(fileDateFormat)

	case layout.FieldAgentName:
		return e.RegisteredAgent.Name
	case layout.FieldAgentLine1:
		return e.RegisteredAgent.Address.Line1
	case layout.FieldAgentCity:
		return e.RegisteredAgent.Address.City
	case layout.FieldAgentState:
		return e.RegisteredAgent.Address.State
	case layout.FieldAgentZip:
		return e.RegisteredAgent.Address.PostalCode

	case layout.FieldManagerName:
		return e.PropertyManager.Name
	case layout.FieldManagerType:
		return e.PropertyManager.Type
	case layout.FieldManagerLine1:
		return e.PropertyManager.Address.Line1
	case layout.FieldManagerCity:
		return e.PropertyManager.Address.City
	case layout.FieldManagerState:
		return e.PropertyManager.Address.State
	case layout.FieldManagerZip:
		return e.PropertyManager.Address.PostalCode
	}
	return ""
}

func officerValue(o Officer, name string) string {
	switch name {
	case layout.FieldOfficerTitle:
		return o.Title
	case layout.FieldOfficerFlag:
		return o.Flag
	case layout.FieldOfficerName:
		return o.Name
	case layout.FieldOfficerLine1:
		return o.Address.Line1
	case layout.FieldOfficerCity:
		return o.Address.City
	case layout.FieldOfficerState:
		return o.Address.State
	case layout.FieldOfficerZip:
		return o.Address.PostalCode
	}
	return ""
}

// pad truncates v to width if longer, otherwise pads it with spaces on the
// right. The cut is hard: no error, no ellipsis. The system favors
// fixed-width conformance over lossless round-tripping.
func pad(v string, width int) string {
	if len(v) > width {
		return v[:width]
	}
	if len(v) == width {
		return v
	}
	return v + strings.Repeat(" ", width-len(v))
}

// parseFileDate parses the MMDDYYYY filing date column. A blank or
// unparseable column yields the zero time; decode only fails on a length
// mismatch.
func parseFileDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(fileDateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
