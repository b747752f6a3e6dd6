package tiktokdomain

const BudgetModeDay = "BUDGET_MODE_DAY"

type Campaign struct {
	CampaignID      string   `json:"campaign_id"`
	CampaignName    string   `json:"campaign_name"`
	Budget          *float64 `json:"budget"`
	BudgetMode      string   `json:"budget_mode"`
	OperationStatus string   `json:"operation_status"`
}

type CampaignListData struct {
	List     []Campaign `json:"list"`
	PageInfo PageInfo   `json:"page_info"`
}

type BudgetUpdateRequest struct {
	AdvertiserID string  `json:"advertiser_id"`
	CampaignID   string  `json:"campaign_id"`
	BudgetMode   string  `json:"budget_mode"`
	Budget       float64 `json:"budget"`
}
