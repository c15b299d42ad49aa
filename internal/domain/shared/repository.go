package shared

// MaxPageSize caps offset pagination for all list operations.
const MaxPageSize = 100

// Page represents skip/limit offset pagination. The zero value is
// normalized to the defaults by Normalize.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps the page to sane bounds: negative skip becomes 0 and
// the limit is forced into (0, MaxPageSize].
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 || p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}
