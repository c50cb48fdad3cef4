package notify

type BonusTaskPayload struct {
	TaskID    int64  `json:"task_id"`
	Currency  string `json:"currency"`
	Wager     string `json:"wager"`
	NeedWager string `json:"need_wager"`
}

type OrderPayload struct {
	OrderID  int64  `json:"order_id"`
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
	Payout   string `json:"payout"`
	GameID   string `json:"game_id"`
}

type DepositPayload struct {
	DepositID int64  `json:"deposit_id"`
	Currency  string `json:"currency"`
	Amount    string `json:"amount"`
}

type CashbackPayload struct {
	CashbackID int64  `json:"cashback_id"`
	Period     int    `json:"period"`
	Currency   string `json:"currency"`
	Amount     string `json:"amount"`
}

type VipPayload struct {
	OldLevel int `json:"old_level"`
	NewLevel int `json:"new_level"`
}
