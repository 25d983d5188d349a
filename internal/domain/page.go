package domain

// PageRequest selects an offset-based window: Page is zero-based, Size is
// the number of records per page.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of records preceding the requested page. Callers
// must check Page against the total page count first; the product is only
// bounded for pages that exist.
func (p PageRequest) Offset() int64 {
	return int64(p.Page) * int64(p.Size)
}

// PastEnd reports whether the requested page lies beyond a result set of
// total records.
func (p PageRequest) PastEnd(total int64) bool {
	if p.Size <= 0 {
		return true
	}
	return int64(p.Page) >= (total+int64(p.Size)-1)/int64(p.Size)
}

// Page is one window of an ordered result set.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage builds a Page and derives TotalPages as ceil(total / size).
func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return &Page[T]{
		Content:       content,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// IsEmpty reports whether the page holds no records.
func (p *Page[T]) IsEmpty() bool {
	return len(p.Content) == 0
}
