package repo

import "fmt"

// PageView is one page of a record collection plus the metadata needed to
// render pagination controls and a "showing X-Y of N" label
type PageView struct {
	Items      []*Record
	Page       int
	PageSize   int
	TotalPages int
	Total      int
	// First and Last are 1-indexed and inclusive; both are 0 for an empty collection
	First int
	Last  int
}

// TotalPages returns ceil(total/pageSize), never less than 1
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	return (total-1)/pageSize + 1
}

// ClampPage pins page into [1, totalPages]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the requested page of records. Out of range page numbers
// are clamped.
func Paginate(records []*Record, pageSize, page int) (PageView, error) {
	if pageSize < 1 {
		return PageView{}, ErrInvalidPageSize(pageSize)
	}

	total := len(records)
	totalPages := TotalPages(total, pageSize)
	page = ClampPage(page, totalPages)

	view := PageView{
		Items:      []*Record{},
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
	if total == 0 {
		return view, nil
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	view.Items = append(view.Items, records[start:end]...)
	view.First = start + 1
	view.Last = end
	return view, nil
}

// Label renders the "X-Y of N" text shown next to the pagination controls
func (v PageView) Label() string {
	if v.Total == 0 {
		return "0 of 0"
	}
	return fmt.Sprintf("%d-%d of %d", v.First, v.Last, v.Total)
}

func (v PageView) HasPrevious() bool {
	return v.Page > 1
}

func (v PageView) HasNext() bool {
	return v.Page < v.TotalPages
}
