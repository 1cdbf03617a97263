package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Account:
		o.printAccount(v)
	case AuthResult:
		o.printAuthResult(v)
	case Achievements:
		o.printAchievements(v)
	case FinishResult:
		o.printFinishResult(v)
	case BalanceResult:
		o.printBalanceResult(v)
	case Rankings:
		o.printRankings(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Account response type (matches API)
type Account struct {
	Username     string   `json:"username"`
	Coins        int      `json:"coins"`
	CurrentSkin  string   `json:"current_skin"`
	OwnedSkins   []string `json:"owned_skins"`
	CurrentTitle string   `json:"current_title"`
}

// AuthResult combines account and token
type AuthResult struct {
	Account      Account `json:"account"`
	SessionToken string  `json:"session_token"`
}

// Achievements response type
type Achievements struct {
	UnlockedTitles      []string `json:"unlocked_titles"`
	AchievementsClaimed []string `json:"achievements_claimed"`
	GamesPlayed         int      `json:"games_played"`
	GamesWon            int      `json:"games_won"`
	MinesHit            int      `json:"mines_hit"`
}

// FinishResult response type
type FinishResult struct {
	CoinsEarned int `json:"coins_earned"`
	TotalCoins  int `json:"total_coins"`
}

// BalanceResult response type
type BalanceResult struct {
	Success    bool `json:"success"`
	NewBalance int  `json:"new_balance"`
}

// AckResult response type
type AckResult struct {
	Success bool `json:"success"`
}

// RankingEntry response type
type RankingEntry struct {
	Rank        int       `json:"rank"`
	Username    string    `json:"username"`
	TimeSeconds int       `json:"time_seconds"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// Rankings response type
type Rankings struct {
	Difficulty string         `json:"difficulty"`
	Entries    []RankingEntry `json:"entries"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAccount(a Account) {
	fmt.Printf("Account: %s\n", a.Username)
	fmt.Printf("Coins: %d\n", a.Coins)
	fmt.Printf("Skin: %s\n", a.CurrentSkin)
	fmt.Printf("Owned Skins: %s\n", strings.Join(a.OwnedSkins, ", "))
	if a.CurrentTitle != "" {
		fmt.Printf("Title: %s\n", a.CurrentTitle)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printAccount(a.Account)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printAchievements(a Achievements) {
	fmt.Printf("Games Played: %d\n", a.GamesPlayed)
	fmt.Printf("Games Won: %d\n", a.GamesWon)
	fmt.Printf("Mines Hit: %d\n", a.MinesHit)
	fmt.Printf("Achievements (%d):\n", len(a.AchievementsClaimed))
	for _, name := range a.AchievementsClaimed {
		fmt.Printf("  - %s\n", name)
	}
	fmt.Printf("Titles (%d):\n", len(a.UnlockedTitles))
	for _, name := range a.UnlockedTitles {
		fmt.Printf("  - %s\n", name)
	}
}

func (o *Output) printFinishResult(f FinishResult) {
	fmt.Printf("Coins Earned: %d\n", f.CoinsEarned)
	fmt.Printf("Total Coins: %d\n", f.TotalCoins)
}

func (o *Output) printBalanceResult(b BalanceResult) {
	fmt.Printf("New Balance: %d\n", b.NewBalance)
}

func (o *Output) printRankings(r Rankings) {
	fmt.Printf("Rankings (%s):\n", r.Difficulty)
	if len(r.Entries) == 0 {
		fmt.Println("  (no scores yet)")
		return
	}
	for _, e := range r.Entries {
		fmt.Printf("  %2d. %s - %ds (%s)\n", e.Rank, e.Username, e.TimeSeconds, e.RecordedAt.Format(time.RFC3339))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
