package pdfext

// Mock implements Extractor for tests, returning canned page text per path.
type Mock struct {
	// Pages maps a document path to its page texts.
	Pages map[string][]string
	// Err, when set, is returned for every path.
	Err error
}

// NewMock creates a Mock serving the given page texts.
func NewMock(pages map[string][]string) *Mock {
	return &Mock{Pages: pages}
}

// ExtractPages returns the canned pages for the path.
func (m *Mock) ExtractPages(path string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Pages[path], nil
}
