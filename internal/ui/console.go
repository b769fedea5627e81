package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Amr-9/ZeroHunter/pkg/generator"
	"github.com/Amr-9/ZeroHunter/pkg/generator/tron"
	"github.com/charmbracelet/lipgloss"
)

var (
	cyan   = lipgloss.Color("#00D7D7")
	green  = lipgloss.Color("#00D700")
	yellow = lipgloss.Color("#D7D700")
	red    = lipgloss.Color("#D70000")
	purple = lipgloss.Color("#AF5FD7")
	grey   = lipgloss.Color("#6C6C6C")

	bannerStyle = lipgloss.NewStyle().Foreground(cyan).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(green).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(cyan).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(purple).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(yellow)
	dimStyle    = lipgloss.NewStyle().Foreground(grey)
	warnStyle   = lipgloss.NewStyle().Foreground(red).Bold(true)
	rateStyle   = lipgloss.NewStyle().Foreground(green).Bold(true)

	successBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(green).
			Foreground(green).
			Bold(true).
			Padding(0, 15)
)

const header = `
 _____               _   _             _
|__  /___ _ __ ___  | | | |_   _ _ __ | |_ ___ _ __
  / // _ \ '__/ _ \ | |_| | | | | '_ \| __/ _ \ '__|
 / /|  __/ | | (_) ||  _  | |_| | | | | ||  __/ |
/____\___|_|  \___/ |_| |_|\__,_|_| |_|\__\___|_|
`

// ClearScreen clears the terminal
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}

// ClearLine clears the current line
func ClearLine() {
	fmt.Print("\r\033[K")
}

// Banner renders the header with the version line.
func Banner(version string) string {
	return bannerStyle.Render(header) + "\n" +
		valueStyle.Render("  Leading-Zero Address Search ") + dimStyle.Render("• "+version) + "\n"
}

// PrintWelcomeBanner shows the header without waiting for input
func PrintWelcomeBanner(version string) {
	fmt.Println(Banner(version))
}

// ExpectedAttempts is the mean number of candidates needed to reach threshold: 256^threshold.
func ExpectedAttempts(threshold int) float64 {
	return math.Pow(256, float64(threshold))
}

// RenderSearchInfo describes the search about to run.
func RenderSearchInfo(config *generator.Config, host CPUInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🚀 SEARCHING"))
	b.WriteString(" " + labelStyle.Render("0x"+strings.Repeat("00", config.Threshold)) + dimStyle.Render("..."))
	b.WriteString(" " + dimStyle.Render(fmt.Sprintf("(1/%s)", formatFloat(ExpectedAttempts(config.Threshold)))))
	b.WriteString("\n")

	policy := "shared start"
	if config.Stride > 0 {
		policy = "stride " + FormatNumber(config.Stride)
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("   seed %q │ base %s │ %d lanes (%s) │ %s",
		config.Seed, config.BaseIteration.Dec(), config.Lanes, policy, host)))
	b.WriteString("\n")

	return b.String()
}

// PrintSearchInfo displays search configuration
func PrintSearchInfo(config *generator.Config, host CPUInfo) {
	fmt.Println()
	fmt.Println(RenderSearchInfo(config, host))
}

// Progress returns the probability that a qualifying candidate has been seen after
// attempts tries: 1 - (1 - 1/expected)^attempts.
func Progress(attempts uint64, expected float64) float64 {
	if expected <= 1 {
		return 1
	}
	return -math.Expm1(float64(attempts) * math.Log1p(-1/expected))
}

// PrintProgress shows animated progress bar
func PrintProgress(stats generator.Stats, expected float64, frame int) {
	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[frame%len(spinners)]

	barWidth := 40
	filled := int(Progress(stats.Attempts, expected) * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("▓", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Printf("\r   %s %s %s │ %s │ %s",
		labelStyle.Render(spinner),
		dimStyle.Render(bar),
		rateStyle.Render(FormatHashRate(stats.HashRate)),
		valueStyle.Render(FormatNumber(stats.Attempts)),
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
}

// RenderSuccess renders the found address, its key and how to reproduce it.
func RenderSuccess(result *generator.Result, elapsed time.Duration, attempts uint64) string {
	var b strings.Builder

	b.WriteString(successBox.Render("✨ ADDRESS FOUND! ✨"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("⟠ ETHEREUM ADDRESS") + "\n")
	b.WriteString("     " + titleStyle.Render(result.Address.Hex()) + "\n")
	b.WriteString("     " + dimStyle.Render("Tron: "+tron.FromEthereum(result.Address)) + "\n\n")

	b.WriteString(keyStyle.Render("🔑 PRIVATE KEY") + "\n")
	b.WriteString("     " + valueStyle.Render(result.PrivateKey.Hex()) + "\n\n")

	b.WriteString(keyStyle.Render("🌱 ENTROPY SEED") + "   " + valueStyle.Render(fmt.Sprintf("%q", result.Seed)) + "\n")
	b.WriteString(keyStyle.Render("🔢 HASH ITERATION") + " " + valueStyle.Render(result.Iteration.Dec()) + "\n\n")

	fmt.Fprintf(&b, "⏱  %s   │   📊 %s   │   🎯 %d zero bytes   │   lane %d\n\n",
		FormatDuration(elapsed), FormatNumber(attempts), result.Score, result.Lane)
	b.WriteString(warnStyle.Render("⚠  KEEP YOUR PRIVATE KEY SECRET!"))
	b.WriteString("\n")

	return b.String()
}

// PrintSuccess shows the found address
func PrintSuccess(result *generator.Result, elapsed time.Duration, attempts uint64) {
	fmt.Println()
	fmt.Println(RenderSuccess(result, elapsed, attempts))
}

// PrintNoResult reports a search that ended without a qualifying address
func PrintNoResult(elapsed time.Duration, attempts uint64) {
	fmt.Println()
	fmt.Printf("   %s │ %s attempts │ %s\n",
		warnStyle.Render("⚠ No valid key found."),
		FormatNumber(attempts),
		FormatDuration(elapsed))
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return s
	}
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// formatFloat prints expected attempts, switching to scientific notation past uint64.
func formatFloat(f float64) string {
	if f < math.MaxUint64 {
		return FormatNumber(uint64(f))
	}
	return fmt.Sprintf("%.2e", f)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
