package fplapi

type bootstrapEnvelope struct {
	Teams    []teamItem    `json:"teams"`
	Elements []elementItem `json:"elements"`
	Events   []eventItem   `json:"events"`
}

type teamItem struct {
	Code      int    `json:"code"`
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type elementItem struct {
	ID          int64  `json:"id"`
	Code        int64  `json:"code"`
	TeamCode    int    `json:"team_code"`
	ElementType int    `json:"element_type"`
	WebName     string `json:"web_name"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	Status      string `json:"status"`
}

type eventItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	IsPrevious bool   `json:"is_previous"`
	IsCurrent  bool   `json:"is_current"`
	IsNext     bool   `json:"is_next"`
	Finished   bool   `json:"finished"`
}

type picksEnvelope struct {
	ActiveChip string     `json:"active_chip"`
	Picks      []pickItem `json:"picks"`
}

type pickItem struct {
	Element  int64 `json:"element"`
	Position int   `json:"position"`
}

type historyEnvelope struct {
	Current []historyItem `json:"current"`
	Chips   []chipItem    `json:"chips"`
}

type historyItem struct {
	Event              int   `json:"event"`
	Points             int   `json:"points"`
	TotalPoints        int   `json:"total_points"`
	OverallRank        int64 `json:"overall_rank"`
	EventTransfers     int   `json:"event_transfers"`
	EventTransfersCost int   `json:"event_transfers_cost"`
	PointsOnBench      int   `json:"points_on_bench"`
	Bank               int   `json:"bank"`
	Value              int   `json:"value"`
}

type chipItem struct {
	Name  string `json:"name"`
	Time  string `json:"time"`
	Event int    `json:"event"`
}

type transferItem struct {
	ElementIn      int64  `json:"element_in"`
	ElementInCost  int    `json:"element_in_cost"`
	ElementOut     int64  `json:"element_out"`
	ElementOutCost int    `json:"element_out_cost"`
	Entry          int64  `json:"entry"`
	Event          int    `json:"event"`
	Time           string `json:"time"`
}
