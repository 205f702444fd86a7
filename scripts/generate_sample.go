//go:build ignore

// Writes a JSON array of sample documents for `scribe doc import`.
// Bodies deliberately keep paragraph lines adjacent so --normalize has
// work to do.
package main

import (
	"encoding/json"
	"fmt"
	mrand "math/rand"
	"os"
	"strings"
	"time"

	"github.com/mithrel/scribe/pkg/api"
)

var blocks = []string{
	"First line of a thought.\nSecond line of the same thought.",
	"- item one\n- item two\n- item three",
	"```go\nfmt.Println(\"hi\")\n```",
	"> quoted text\n> more quote",
	"| a | b |\n| --- | --- |\n| 1 | 2 |",
	"Closing words here.\nAnd a final line.",
	"中文段落with ASCII mixed in.",
}

func main() {
	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))

	const total = 200
	out := make([]api.Document, 0, total)
	base := time.Now().UTC()

	for i := 0; i < total; i++ {
		created := base.Add(-time.Duration(30*i+mr.Intn(60)) * time.Minute)
		d := api.NewDocument(fmt.Sprintf("Sample Document %03d", i+1), sampleBody(mr, i), created)
		if mr.Float64() < 0.3 {
			d.Touch(created.Add(time.Duration(mr.Intn(180)) * time.Minute))
		}
		out = append(out, d)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func sampleBody(r *mrand.Rand, i int) string {
	k := 2 + r.Intn(4)
	parts := []string{fmt.Sprintf("# Sample %03d", i+1)}
	for _, j := range r.Perm(len(blocks))[:k] {
		parts = append(parts, blocks[j])
	}
	return strings.Join(parts, "\n") + "\n"
}
