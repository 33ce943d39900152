package program

import (
	"fmt"
	"testing"

	"github.com/coinsccg/snarkVM/pkg/util/source"
)

func Test_ZZDebug(t *testing.T) {
	src := source.NewSourceFile("test.aleo", []byte("program token.aleo;\n\nfunction compute:\n    input r0 as field.public;\n"))
	tokens, errs := Lex(*src)
	fmt.Println("errs:", errs)
	for _, tok := range tokens {
		fmt.Printf("kind=%d text=%q span=%v\n", tok.Kind, string(src.Contents()[tok.Span.Start():tok.Span.End()]), tok.Span)
	}
}
