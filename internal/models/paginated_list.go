package model

type PaginatedList struct {
	PageIndex  int        `json:"page_index"`
	PageSize   int        `json:"page_size"`
	TotalCount int        `json:"total_count"`
	Data       []ToDoItem `json:"data"`
}

func (p *PaginatedList) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}
