package models

/*
CatalogSnapshot is the read-only view of the remote catalog taken once at
startup. Any field may be at its zero value when its fetch failed.
*/
type CatalogSnapshot struct {
	Tags       []string
	TotalCount int
	Sample     []CatalogRecord

	/*
	 * Names of the fetches that did not complete ("tags", "count", "sample").
	 */
	Failures []string
}

type CatalogRecord struct {
	ID   string
	Tags []string
}

func (s *CatalogSnapshot) HasFailures() bool {
	return len(s.Failures) > 0
}

// QuickTags returns at most n tags from the front of the vocabulary.
func (s *CatalogSnapshot) QuickTags(n int) []string {
	if n < 0 {
		n = 0
	}

	if n > len(s.Tags) {
		n = len(s.Tags)
	}

	return s.Tags[:n]
}

// TopTags returns at most n of the record's tags.
func (r CatalogRecord) TopTags(n int) []string {
	if n > len(r.Tags) {
		n = len(r.Tags)
	}

	return r.Tags[:n]
}
