package entity

// Page is the paged envelope used by every list endpoint.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"` // Current page, 0-based.
	Size          int   `json:"size"`
	Last          bool  `json:"last"`
}

// IsEmpty reports whether the page carries no items.
func (p *Page[T]) IsEmpty() bool {
	return p == nil || len(p.Content) == 0
}

// NewPage slices items into the requested page and fills the envelope metadata.
func NewPage[T any](items []T, page, size int) *Page[T] {
	if size <= 0 {
		size = len(items)
	}
	if page < 0 {
		page = 0
	}

	total := len(items)
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := make([]T, end-start)
	copy(content, items[start:end])

	return &Page[T]{
		Content:       content,
		TotalElements: int64(total),
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
		Last:          page >= totalPages-1,
	}
}
