package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeplab/minesweeper-go/internal/api"
	"github.com/sweeplab/minesweeper-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "msweep-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/msweep")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		ProgressionService: app.ProgressionService,
		ShopService:        app.ShopService,
		LeaderboardService: app.LeaderboardService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type authResponse struct {
	Account struct {
		Username     string   `json:"username"`
		Coins        int      `json:"coins"`
		CurrentSkin  string   `json:"current_skin"`
		OwnedSkins   []string `json:"owned_skins"`
		CurrentTitle string   `json:"current_title"`
	} `json:"account"`
	SessionToken string `json:"session_token"`
}

type accountResponse struct {
	Username     string   `json:"username"`
	Coins        int      `json:"coins"`
	CurrentSkin  string   `json:"current_skin"`
	OwnedSkins   []string `json:"owned_skins"`
	CurrentTitle string   `json:"current_title"`
}

type achievementsResponse struct {
	UnlockedTitles      []string `json:"unlocked_titles"`
	AchievementsClaimed []string `json:"achievements_claimed"`
	GamesPlayed         int      `json:"games_played"`
	GamesWon            int      `json:"games_won"`
	MinesHit            int      `json:"mines_hit"`
}

type finishResponse struct {
	CoinsEarned int `json:"coins_earned"`
	TotalCoins  int `json:"total_coins"`
}

type balanceResponse struct {
	Success    bool `json:"success"`
	NewBalance int  `json:"new_balance"`
}

type rankingsResponse struct {
	Difficulty string `json:"difficulty"`
	Entries    []struct {
		Rank        int    `json:"rank"`
		Username    string `json:"username"`
		TimeSeconds int    `json:"time_seconds"`
	} `json:"entries"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AccountCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register
	output, err := cli.run("account", "register", "--user", "alice", "--email", "alice@example.com", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "alice", authResp.Account.Username)
	assert.Equal(t, []string{"default"}, authResp.Account.OwnedSkins)
	assert.NotEmpty(t, authResp.SessionToken)

	// Get me (token should be saved in token file)
	output, err = cli.run("account", "me")
	require.NoError(t, err, "output: %s", output)

	var me accountResponse
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, "default", me.CurrentSkin)

	// Login again with credentials
	output, err = cli.run("account", "login", "--email", "alice@example.com", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.NotEmpty(t, authResp.SessionToken)
}

func TestCLI_FullGameFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("account", "register", "--user", "bob", "--email", "bob@example.com", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	// Win enough fast easy games to afford a skin
	var finish finishResponse
	for i := 0; i < 5; i++ {
		output, err = cli.run("game", "finish", "--difficulty", "easy", "--time", "20")
		require.NoError(t, err, "output: %s", output)
		require.NoError(t, json.Unmarshal([]byte(output), &finish))
		assert.Equal(t, 10, finish.CoinsEarned)
	}
	assert.Equal(t, 50, finish.TotalCoins)

	// Lose one
	output, err = cli.run("game", "fail")
	require.NoError(t, err, "output: %s", output)

	// Buy and equip a skin
	output, err = cli.run("shop", "buy", "--skin", "midnight")
	require.NoError(t, err, "output: %s", output)

	var balance balanceResponse
	require.NoError(t, json.Unmarshal([]byte(output), &balance))
	assert.Equal(t, 0, balance.NewBalance)

	output, err = cli.run("shop", "equip-skin", "--skin", "midnight")
	require.NoError(t, err, "output: %s", output)

	// Equip the title unlocked by the first win
	output, err = cli.run("shop", "equip-title", "--title", "Novice Sweeper")
	require.NoError(t, err, "output: %s", output)

	// Profile reflects all of it
	output, err = cli.run("account", "me")
	require.NoError(t, err, "output: %s", output)

	var me accountResponse
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, "midnight", me.CurrentSkin)
	assert.Equal(t, "Novice Sweeper", me.CurrentTitle)

	// Achievements show the lifetime stats
	output, err = cli.run("account", "achievements")
	require.NoError(t, err, "output: %s", output)

	var achievements achievementsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &achievements))
	assert.Equal(t, 6, achievements.GamesPlayed)
	assert.Equal(t, 5, achievements.GamesWon)
	assert.Equal(t, 1, achievements.MinesHit)
	assert.Contains(t, achievements.UnlockedTitles, "Novice Sweeper")

	// Rankings are public
	output, err = cli.run("rankings", "easy")
	require.NoError(t, err, "output: %s", output)

	var rankings rankingsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &rankings))
	require.Len(t, rankings.Entries, 1)
	assert.Equal(t, "bob", rankings.Entries[0].Username)
	assert.Equal(t, 20, rankings.Entries[0].TimeSeconds)

	// Logout invalidates the session
	output, err = cli.run("account", "logout")
	require.NoError(t, err, "output: %s", output)

	_, err = cli.run("account", "me")
	require.Error(t, err)
}
