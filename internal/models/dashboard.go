package models

// BoardColumn é uma coluna do quadro de status
type BoardColumn struct {
	Status   PermitStatus `json:"status"`
	Title    string       `json:"title"`
	Count    int          `json:"count"`
	Previews []Permit     `json:"previews"`
}

// Dashboard resume as publicações filtradas por situação
type Dashboard struct {
	Columns []BoardColumn        `json:"columns"`
	Totals  map[PermitStatus]int `json:"totals"`
	Total   int                  `json:"total"`
	Recent  []Permit             `json:"recent"`
}
