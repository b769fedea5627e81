package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/Amr-9/ZeroHunter/pkg/generator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{18446744073709551615, "18,446,744,073,709,551,615"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
	assert.Equal(t, "2m 5s", FormatDuration(125*time.Second))
	assert.Equal(t, "3h 7m", FormatDuration(3*time.Hour+7*time.Minute))
}

func TestFormatHashRate(t *testing.T) {
	assert.Equal(t, "512/s", FormatHashRate(512))
	assert.Equal(t, "12.3K/s", FormatHashRate(12345))
	assert.Equal(t, "2.5M/s", FormatHashRate(2500000))
}

func TestExpectedAttemptsAndProgress(t *testing.T) {
	assert.Equal(t, 1.0, ExpectedAttempts(0))
	assert.Equal(t, 65536.0, ExpectedAttempts(2))

	assert.Equal(t, 1.0, Progress(0, 1))
	assert.Zero(t, Progress(0, 256))
	assert.InDelta(t, 0.632, Progress(256, 256), 0.01)
	assert.Less(t, Progress(1000, ExpectedAttempts(20)), 1e-40)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "65,536", formatFloat(ExpectedAttempts(2)))
	assert.Equal(t, "1.46e+48", formatFloat(ExpectedAttempts(20)))
}

func TestRenderSuccess(t *testing.T) {
	res := &generator.Result{
		Address:   common.HexToAddress("0x00eadbef4879608fa2f4c1e3bd6a93360c1e619a"),
		Seed:      "xyz",
		Iteration: *uint256.NewInt(670),
		Score:     1,
		Lane:      2,
	}
	res.PrivateKey[31] = 0x01

	out := RenderSuccess(res, 2*time.Second, 628)
	assert.Contains(t, out, res.Address.Hex())
	assert.Contains(t, out, res.PrivateKey.Hex())
	assert.Contains(t, out, `"xyz"`)
	assert.Contains(t, out, "670")
	assert.Contains(t, out, "628")
	assert.Contains(t, out, "Tron: T")
}

func TestRenderSearchInfo(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.Threshold = 3
	cfg.Stride = 5000

	out := RenderSearchInfo(cfg, CPUInfo{Model: "Test CPU", Physical: 4, Logical: 8})
	assert.Contains(t, out, "0x000000")
	assert.Contains(t, out, "16,777,216")
	assert.Contains(t, out, "stride 5,000")
	assert.Contains(t, out, "Test CPU (4 cores / 8 threads)")
}

func TestCPUInfoString(t *testing.T) {
	assert.Equal(t, "CPU (8 threads)", CPUInfo{Logical: 8}.String())
	assert.Positive(t, DetectCPU().Logical)
}

func TestWelcomeModel(t *testing.T) {
	m := welcomeModel{version: "test"}
	require.True(t, strings.Contains(m.View(), "Hit enter."))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.False(t, next.(welcomeModel).confirmed)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, next.(welcomeModel).confirmed)
	assert.Empty(t, next.View())

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
	assert.True(t, next.(welcomeModel).aborted)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(welcomeModel).aborted)

	next, cmd = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, m, next)
}
