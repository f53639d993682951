package aml

import (
	"io"
	"os"

	"github.com/arthur-debert/amlpack/pkg/errors"
	"github.com/arthur-debert/amlpack/pkg/logging"
	"github.com/beevik/etree"
)

// ReadRecords parses an AML document and returns its <Item> records in
// document order. The root may be an <AML> wrapper or a single <Item>.
func ReadRecords(r io.Reader) ([]*etree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "failed to parse AML document")
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrInvalidInput, "document has no root element")
	}

	var records []*etree.Element
	switch root.Tag {
	case TagItem:
		records = []*etree.Element{root}
	case TagAML:
		records = root.SelectElements(TagItem)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unexpected root element <%s>", root.Tag).
			WithDetail("tag", root.Tag)
	}

	logger := logging.GetLogger("aml.reader")
	logger.Debug().
		Int("records", len(records)).
		Msg("Read AML records")
	return records, nil
}

// ReadRecordsFile reads records from the AML file at path.
func ReadRecordsFile(path string) ([]*etree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to open AML file").
			WithDetail("path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := ReadRecords(f)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}
	return records, nil
}
