package leaderboard

type Entry struct {
	Rank    int    `json:"rank"`
	Name    string `json:"name"`
	Balance int    `json:"balance"`
	IsYou   bool   `json:"is_you"`
}

type Response struct {
	Entries []Entry `json:"entries"`
}
