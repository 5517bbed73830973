package raw

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	errNoRoot        = errors.New("document has no root object")
	errUnsetObject   = errors.New("reserved object was never set")
	errUnknownObject = errors.New("object number out of range")
)

const header = "%PDF-1.4\n%\xE2\xE3\xCF\xD3\n"

// Document is an in-memory list of indirect objects. Serialization records the real
// byte offset of every object and derives the cross-reference table from them.
type Document struct {
	objects [][]byte // object number i+1 lives at index i
	root    int
	info    int
}

func NewDocument() *Document {
	return &Document{}
}

// Reserve allocates an object number so bodies can reference objects written later.
func (d *Document) Reserve() int {
	d.objects = append(d.objects, nil)
	return len(d.objects)
}

// Set stores the body of a reserved object.
func (d *Document) Set(num int, body string) error {
	if num < 1 || num > len(d.objects) {
		return fmt.Errorf("%w: %d", errUnknownObject, num)
	}
	d.objects[num-1] = []byte(body)
	return nil
}

// Add appends an object and returns its number.
func (d *Document) Add(body string) int {
	d.objects = append(d.objects, []byte(body))
	return len(d.objects)
}

// AddStream appends a stream object. The /Length entry is the exact size of data.
// dict holds any extra dictionary entries, without the surrounding << >>.
func (d *Document) AddStream(dict string, data []byte) int {
	var b bytes.Buffer
	b.WriteString("<< ")
	if dict != "" {
		b.WriteString(dict)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "/Length %d >>\nstream\n", len(data))
	b.Write(data)
	b.WriteString("\nendstream")
	d.objects = append(d.objects, b.Bytes())
	return len(d.objects)
}

// SetRoot marks the catalog object.
func (d *Document) SetRoot(num int) { d.root = num }

// SetInfo marks the document information dictionary.
func (d *Document) SetInfo(num int) { d.info = num }

// Bytes serializes the whole file: header, objects, xref table and trailer.
func (d *Document) Bytes() ([]byte, error) {
	if d.root == 0 {
		return nil, errNoRoot
	}

	var out bytes.Buffer
	out.WriteString(header)

	offsets := make([]int, len(d.objects))
	for i, body := range d.objects {
		if body == nil {
			return nil, fmt.Errorf("%w: %d", errUnsetObject, i+1)
		}
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n", i+1)
		out.Write(body)
		out.WriteString("\nendobj\n")
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(d.objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}

	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root %d 0 R", len(d.objects)+1, d.root)
	if d.info != 0 {
		fmt.Fprintf(&out, " /Info %d 0 R", d.info)
	}
	fmt.Fprintf(&out, " >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return out.Bytes(), nil
}
