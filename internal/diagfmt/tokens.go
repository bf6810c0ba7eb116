package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"uscl/internal/token"
)

// TokenOutput is the serializable form of one token.
type TokenOutput struct {
	Kind   string      `json:"kind" msgpack:"kind"`
	Value  token.Value `json:"value" msgpack:"value"`
	Line   uint32      `json:"line" msgpack:"line"`
	Column uint32      `json:"column" msgpack:"column"`
}

func toOutputs(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:   tok.Kind.String(),
			Value:  tok.Value,
			Line:   tok.Line,
			Column: tok.Column,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensPretty writes tokens in a human-readable form.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%4d: %-10s", i+1, tok.Kind.String())
		if !tok.Value.IsNone() {
			fmt.Fprintf(w, " %s", tok.Value)
		}
		fmt.Fprintf(w, " at %d:%d\n", tok.Line, tok.Column)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toOutputs(tokens))
}

// FormatTokensMsgpack writes tokens as a msgpack array, the same payload
// shape the token cache stores.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	encoder := msgpack.NewEncoder(w)
	return encoder.Encode(toOutputs(tokens))
}
