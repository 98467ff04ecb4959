package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

var convertJSON bool

var convertCmd = &cobra.Command{
	Use:   "convert [text...]",
	Short: "Convert the quantities in a piece of text",
	Long: `Runs the converter on the given text and prints the reply the bot
would post. Without arguments, each line of standard input is converted
and only lines that mention a quantity produce output.

Examples:
  unitbot convert "Hello, I am 171 cm tall"
  echo "it's -30 c where I live rn" | unitbot convert
  unitbot convert --json "140 pounds"`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output conversions as JSON")
	rootCmd.AddCommand(convertCmd)
}

// convertResult is the JSON form of one converted text.
type convertResult struct {
	Text        string             `json:"text"`
	Reply       string             `json:"reply"`
	Matched     bool               `json:"matched"`
	Conversions []conversionResult `json:"conversions"`
}

type conversionResult struct {
	Value          float64 `json:"value"`
	Unit           string  `json:"unit"`
	ConvertedValue float64 `json:"converted_value"`
	ConvertedUnit  string  `json:"converted_unit"`
	Category       string  `json:"category"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	if responder == nil {
		return errors.New("responder not configured")
	}

	var texts []string
	switch {
	case len(args) > 0:
		texts = []string{strings.Join(args, " ")}
	case stdinIsPiped(cmd.InOrStdin()):
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
		texts = lines
	default:
		return errors.New("nothing to convert: pass text as arguments or pipe it on stdin")
	}

	results := make([]convertResult, 0, len(texts))
	for _, text := range texts {
		results = append(results, convertText(text))
	}

	if convertJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal conversions: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	matched := 0
	for _, r := range results {
		if r.Matched {
			cmd.Print(r.Reply)
			matched++
		}
	}
	if matched == 0 && len(args) > 0 {
		cmd.Println("No quantities found.")
	}
	return nil
}

func convertText(text string) convertResult {
	reply, ok := responder.Respond(text)
	conversions := responder.Conversions(text)

	r := convertResult{
		Text:        text,
		Reply:       reply,
		Matched:     ok,
		Conversions: make([]conversionResult, len(conversions)),
	}
	for i, c := range conversions {
		r.Conversions[i] = toConversionResult(c)
	}
	return r
}

func toConversionResult(c domain.Conversion) conversionResult {
	return conversionResult{
		Value:          c.Original.Magnitude,
		Unit:           c.Original.Unit.Symbol(),
		ConvertedValue: c.Converted.Magnitude,
		ConvertedUnit:  c.Converted.Unit.Symbol(),
		Category:       c.Original.Unit.Category().String(),
	}
}

// stdinIsPiped reports whether r carries input rather than an interactive terminal.
func stdinIsPiped(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return r != nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}
