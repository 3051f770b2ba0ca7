package pagination

const (
	DefaultPage         = 1
	DefaultItemsPerPage = 100
	MaxItemsPerPage     = 100
)

// Params are the pagination query parameters. Bounds are enforced at the
// request boundary via the binding tags; the window math below assumes
// validated values.
type Params struct {
	Page         int `form:"page,default=1" binding:"gte=1"`
	ItemsPerPage int `form:"items_per_page,default=100" binding:"gte=1,lte=100"`
}

func DefaultParams() Params {
	return Params{Page: DefaultPage, ItemsPerPage: DefaultItemsPerPage}
}

func (p Params) Offset() int { return (p.Page - 1) * p.ItemsPerPage }

func (p Params) Limit() int { return p.ItemsPerPage }

type Meta struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

// NewMeta computes page metadata with ceiling division. When there are no
// items total_pages is 0, and the requested page is echoed back unclamped
// even past the last page.
func NewMeta(p Params, totalItems int64) Meta {
	totalPages := int((totalItems + int64(p.ItemsPerPage) - 1) / int64(p.ItemsPerPage))
	return Meta{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: p.ItemsPerPage,
	}
}

type Envelope[T any] struct {
	Items      []T  `json:"items"`
	Pagination Meta `json:"pagination"`
}

// NewEnvelope wraps a page of view models with its metadata. A nil items
// slice serializes as [] rather than null.
func NewEnvelope[T any](items []T, p Params, totalItems int64) *Envelope[T] {
	if items == nil {
		items = []T{}
	}
	return &Envelope[T]{Items: items, Pagination: NewMeta(p, totalItems)}
}
