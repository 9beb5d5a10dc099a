package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	sim "github.com/disk-sim/disk-sim/sim"
)

// ErrInvalidInput is returned when a prompted value is not an integer.
var ErrInvalidInput = errors.New("invalid input")

// prompter reads whitespace-separated integers after printing a prompt.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &prompter{scanner: scanner, out: out}
}

func (p *prompter) readInt(prompt string) (int64, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input", ErrInvalidInput)
	}
	text := strings.TrimSpace(p.scanner.Text())
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, text)
	}
	return v, nil
}

// runInteractive reproduces the console dialogue: one request count, then a
// seed per trial, printing each trial average and the final average.
func runInteractive(cfg sim.Config, in io.Reader, out io.Writer) (*sim.Metrics, error) {
	p := newPrompter(in, out)
	fmt.Fprintf(out, "%s DISK SCHEDULING\n", strings.ToUpper(policyLabel(cfg.Policy)))

	n, err := p.readInt("Enter a number of file requests: ")
	if err != nil {
		return nil, err
	}
	cfg.Requests = int(n)
	cfg.Seeds = nil
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]sim.TrialResult, 0, cfg.Trials)
	for i := 0; i < cfg.Trials; i++ {
		s, err := p.readInt("Enter a seed: ")
		if err != nil {
			return nil, err
		}
		res, err := sim.RunTrial(cfg, i, s, nil)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
		fmt.Fprintf(out, "average: %d \n", res.AverageHeadMovement)
	}

	m := sim.NewMetrics(results[0].Policy, results)
	fmt.Fprintf(out, "The final average is %d \n", m.OverallAverage)
	return m, nil
}

func policyLabel(name string) string {
	if name == "" {
		return sim.PolicyFCFS
	}
	return name
}
