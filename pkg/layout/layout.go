package layout

import "fmt"

// Field declares one fixed-width column: its name and its width in characters.
type Field struct {
	Name  string
	Width int
}

// Layout describes the geometry of one fixed-width record type: an ordered
// list of head fields, followed by a repeating officer tail region of
// fixed-size strides. It is purely descriptive and holds no record data.
type Layout struct {
	head          []Field
	officer       []Field
	offsets       map[string]int
	widths        map[string]int
	strideOffsets map[string]int
	strideWidths  map[string]int
	headEnd       int
	stride        int
	maxOfficers   int
	totalWidth    int
}

// LayoutError reports an invalid layout configuration. It is only returned
// at construction time, never during encode or decode.
type LayoutError struct {
	Message string
}

func (e *LayoutError) Error() string {
	return e.Message
}

// New builds a Layout from the ordered head fields, the fields that make up
// one officer stride, the maximum officer count and the total record width.
// It fails with LayoutError if any width is non-positive, a field name
// repeats, or the head plus the full officer region would overflow the total
// record width.
func New(head []Field, officer []Field, maxOfficers, totalWidth int) (*Layout, error) {
	if totalWidth <= 0 {
		return nil, &LayoutError{fmt.Sprintf("total width must be positive, got %d", totalWidth)}
	}
	if maxOfficers < 0 {
		return nil, &LayoutError{fmt.Sprintf("max officer count must not be negative, got %d", maxOfficers)}
	}

	l := &Layout{
		head:          head,
		officer:       officer,
		offsets:       make(map[string]int, len(head)),
		widths:        make(map[string]int, len(head)),
		strideOffsets: make(map[string]int, len(officer)),
		strideWidths:  make(map[string]int, len(officer)),
		maxOfficers:   maxOfficers,
		totalWidth:    totalWidth,
	}

	pos := 0
	for _, f := range head {
		if f.Width <= 0 {
			return nil, &LayoutError{fmt.Sprintf("field %q has non-positive width %d", f.Name, f.Width)}
		}
		if _, dup := l.offsets[f.Name]; dup {
			return nil, &LayoutError{fmt.Sprintf("duplicate field name %q", f.Name)}
		}
		l.offsets[f.Name] = pos
		l.widths[f.Name] = f.Width
		pos += f.Width
	}
	l.headEnd = pos

	stride := 0
	for _, f := range officer {
		if f.Width <= 0 {
			return nil, &LayoutError{fmt.Sprintf("officer field %q has non-positive width %d", f.Name, f.Width)}
		}
		if _, dup := l.strideOffsets[f.Name]; dup {
			return nil, &LayoutError{fmt.Sprintf("duplicate officer field name %q", f.Name)}
		}
		l.strideOffsets[f.Name] = stride
		l.strideWidths[f.Name] = f.Width
		stride += f.Width
	}
	l.stride = stride

	if l.headEnd+l.stride*maxOfficers > totalWidth {
		return nil, &LayoutError{fmt.Sprintf(
			"head (%d) plus %d officer strides of %d exceeds total width %d",
			l.headEnd, maxOfficers, l.stride, totalWidth)}
	}

	return l, nil
}

// HeadFields returns the ordered head field declarations.
func (l *Layout) HeadFields() []Field {
	return l.head
}

// OfficerFields returns the ordered field declarations of one officer stride.
func (l *Layout) OfficerFields() []Field {
	return l.officer
}

// Offset returns the byte offset of a head field within the record.
func (l *Layout) Offset(name string) int {
	return l.offsets[name]
}

// Width returns the declared width of a head field.
func (l *Layout) Width(name string) int {
	return l.widths[name]
}

// StrideOffset returns the byte offset of an officer field within its stride.
func (l *Layout) StrideOffset(name string) int {
	return l.strideOffsets[name]
}

// StrideWidth returns the declared width of an officer field.
func (l *Layout) StrideWidth(name string) int {
	return l.strideWidths[name]
}

// HeadEnd returns the offset of the first byte after the fixed head region,
// which is where the officer tail region begins.
func (l *Layout) HeadEnd() int {
	return l.headEnd
}

// OfficerOffset returns the byte offset of the i-th officer stride.
func (l *Layout) OfficerOffset(i int) int {
	return l.headEnd + i*l.stride
}

// Stride returns the width of one officer stride.
func (l *Layout) Stride() int {
	return l.stride
}

// MaxOfficers returns the maximum number of officer strides a record holds.
func (l *Layout) MaxOfficers() int {
	return l.maxOfficers
}

// TotalWidth returns the declared total record width. Every encoded record
// is exactly this long.
func (l *Layout) TotalWidth() int {
	return l.totalWidth
}
