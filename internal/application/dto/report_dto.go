package dto

// ReportCardResponse tarjeta de la pestaña de reportes.
type ReportCardResponse struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ReportResponse reporte tabular.
type ReportResponse struct {
	Kind    string               `json:"kind"`
	Title   string               `json:"title"`
	Columns []string             `json:"columns"`
	Rows    [][]string           `json:"rows"`
	Summary []ReportLineResponse `json:"summary"`
}

// ReportLineResponse total al pie del reporte.
type ReportLineResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
