package report

// DashboardStatsResponse carries the headline figures. Field names follow
// the dashboard's established wire contract.
type DashboardStatsResponse struct {
	TotalRecebido          float64 `json:"totalRecebido"`
	CrescimentoMensal      float64 `json:"crescimentoMensal"`
	ClientesAtivos         int64   `json:"clientesAtivos"`
	NovosClientes          int64   `json:"novosClientes"`
	HonorariosPendentes    float64 `json:"honorariosPendentes"`
	QtdHonorariosPendentes int64   `json:"qtdHonorariosPendentes"`
	HonorariosCadastrados  int64   `json:"honorariosCadastrados"`
}

// RevenuePoint is one month's collected total in the revenue series
type RevenuePoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// ClientsPoint is one month's client activity in the clients series
type ClientsPoint struct {
	Month  string `json:"month"`
	Active int64  `json:"active"`
	New    int64  `json:"new"`
}
