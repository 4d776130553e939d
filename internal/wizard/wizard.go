// Package wizard implements the interactive strategy builder. It walks the
// user through a strategy family's parameters and emits the equivalent
// vector-plus command line; it never writes config files itself.
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Giri-Aayush/1inch-lop/internal/config"
)

// Wizard drives one interactive session over the given streams. Reader and
// writer are injected so sessions are scriptable under test.
type Wizard struct {
	in       *bufio.Scanner
	out      io.Writer
	defaults config.DefaultsConfig
}

func New(in io.Reader, out io.Writer, defaults config.DefaultsConfig) *Wizard {
	return &Wizard{
		in:       bufio.NewScanner(in),
		out:      out,
		defaults: defaults,
	}
}

var mainMenu = []string{
	"Volatility-based execution",
	"TWAP execution",
	"Options on execution rights",
	"Combined TWAP + Volatility",
	"Configuration management",
	"Exit",
}

// Run shows the main menu and walks the selected builder.
func (w *Wizard) Run() error {
	fmt.Fprintln(w.out, "Vector Plus Interactive Mode")
	fmt.Fprintln(w.out)

	choice, err := w.promptSelect("What would you like to create?", mainMenu, 0)
	if err != nil {
		return err
	}

	var cmd string
	switch choice {
	case 0:
		cmd, err = w.buildVolatility()
	case 1:
		cmd, err = w.buildTWAP()
	case 2:
		cmd, err = w.buildOptions()
	case 3:
		cmd, err = w.buildCombined()
	case 4:
		return w.manageConfiguration()
	default:
		fmt.Fprintln(w.out, "Goodbye!")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "Strategy configured. Run:")
	fmt.Fprintf(w.out, "  %s\n", cmd)
	return nil
}

func (w *Wizard) buildVolatility() (string, error) {
	fmt.Fprintln(w.out, "Building Volatility Strategy")
	fmt.Fprintln(w.out)

	baseline, err := w.promptUint("Baseline volatility (basis points)", w.defaults.Volatility.BaselineVolatility)
	if err != nil {
		return "", err
	}
	current, err := w.promptUint("Current volatility (basis points)", 350)
	if err != nil {
		return "", err
	}
	maxSize, err := w.promptFloat("Maximum execution size (ETH)", w.defaults.Volatility.MaxExecutionSize)
	if err != nil {
		return "", err
	}
	conservative, err := w.promptBool("Enable conservative mode?", w.defaults.Volatility.ConservativeMode)
	if err != nil {
		return "", err
	}

	cmd := fmt.Sprintf("vector-plus volatility create-config --baseline-volatility %d --current-volatility %d --max-execution-size %s",
		baseline, current, formatFloat(maxSize))
	if conservative {
		cmd += " --conservative-mode"
	}
	return cmd, nil
}

func (w *Wizard) buildTWAP() (string, error) {
	fmt.Fprintln(w.out, "Building TWAP Strategy")
	fmt.Fprintln(w.out)

	duration, err := w.promptUint("Execution duration (minutes)", w.defaults.TWAP.DurationMinutes)
	if err != nil {
		return "", err
	}
	intervals, err := w.promptUint("Number of intervals", uint64(w.defaults.TWAP.Intervals))
	if err != nil {
		return "", err
	}
	randomize, err := w.promptBool("Enable randomization?", w.defaults.TWAP.RandomizeExecution)
	if err != nil {
		return "", err
	}

	cmd := fmt.Sprintf("vector-plus twap create-config --duration %d --intervals %d", duration, intervals)
	if randomize {
		cmd += " --randomize"
	}
	return cmd, nil
}

func (w *Wizard) buildOptions() (string, error) {
	fmt.Fprintln(w.out, "Building Options Strategy")
	fmt.Fprintln(w.out)

	optType, err := w.promptSelect("Option type", []string{"Call Option", "Put Option"}, 0)
	if err != nil {
		return "", err
	}
	strike, err := w.promptFloat("Strike price (USDC)", 2100.0)
	if err != nil {
		return "", err
	}
	expiration, err := w.promptUint("Expiration (hours)", w.defaults.Options.DefaultExpirationHours)
	if err != nil {
		return "", err
	}
	premium, err := w.promptFloat("Premium (USDC)", 50.0)
	if err != nil {
		return "", err
	}

	sub := "create-call"
	if optType == 1 {
		sub = "create-put"
	}
	return fmt.Sprintf("vector-plus options %s --strike-price %s --expiration-hours %d --premium %s",
		sub, formatFloat(strike), expiration, formatFloat(premium)), nil
}

func (w *Wizard) buildCombined() (string, error) {
	fmt.Fprintln(w.out, "Building Combined Strategy")
	fmt.Fprintln(w.out)

	duration, err := w.promptUint("TWAP duration (minutes)", 180)
	if err != nil {
		return "", err
	}
	intervals, err := w.promptUint("TWAP intervals", 18)
	if err != nil {
		return "", err
	}
	threshold, err := w.promptUint("Volatility threshold (basis points)", 600)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("vector-plus combined create --twap-duration %d --twap-intervals %d --volatility-threshold %d",
		duration, intervals, threshold), nil
}

func (w *Wizard) manageConfiguration() error {
	fmt.Fprintln(w.out, "Configuration Management")
	fmt.Fprintln(w.out)

	choice, err := w.promptSelect("What would you like to do?", []string{
		"Initialize new configuration",
		"Show current configuration",
		"Back",
	}, 0)
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		fmt.Fprintln(w.out, "Run: vector-plus config init")
	case 1:
		fmt.Fprintln(w.out, "Run: vector-plus config show")
	}
	return nil
}

// readLine returns the next input line, or io.EOF when the stream ends.
func (w *Wizard) readLine() (string, error) {
	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(w.in.Text()), nil
}

// promptSelect shows a numbered menu and reads a 1-based choice. Empty
// input picks the default; out-of-range or non-numeric input re-prompts.
func (w *Wizard) promptSelect(label string, items []string, def int) (int, error) {
	fmt.Fprintln(w.out, label)
	for i, item := range items {
		fmt.Fprintf(w.out, "  %d) %s\n", i+1, item)
	}
	for {
		fmt.Fprintf(w.out, "Choice [%d]: ", def+1)
		line, err := w.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		fmt.Fprintf(w.out, "Please enter a number between 1 and %d\n", len(items))
	}
}

func (w *Wizard) promptUint(label string, def uint64) (uint64, error) {
	for {
		fmt.Fprintf(w.out, "%s [%d]: ", label, def)
		line, err := w.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		n, err := strconv.ParseUint(line, 10, 64)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(w.out, "Please enter a non-negative whole number")
	}
}

func (w *Wizard) promptFloat(label string, def float64) (float64, error) {
	for {
		fmt.Fprintf(w.out, "%s [%s]: ", label, formatFloat(def))
		line, err := w.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f, nil
		}
		fmt.Fprintln(w.out, "Please enter a number")
	}
}

func (w *Wizard) promptBool(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(w.out, "%s [%s]: ", label, hint)
		line, err := w.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(w.out, "Please answer y or n")
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
