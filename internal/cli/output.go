package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/zoobzio/scytale"
)

// keyHints describes the key each algorithm expects.
var keyHints = map[scytale.Algo]string{
	scytale.AlgoCaesar:   "integer shift",
	scytale.AlgoMono:     "26-letter permutation of A-Z",
	scytale.AlgoVigenere: "keyword of letters",
	scytale.AlgoOTP:      "pad at least as long as the text",
	scytale.AlgoPlayfair: "keyword seeding a 5x5 grid",
	scytale.AlgoHill:     "four integers a,b,c,d with invertible determinant",
	scytale.AlgoRail:     "rail count of 2 or more",
}

func listAlgorithms(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tKEY")
	for _, algo := range scytale.Algorithms() {
		fmt.Fprintf(tw, "%s\t%s\n", algo, keyHints[algo])
	}
	return tw.Flush()
}

func printFrequency(w io.Writer, text string) error {
	h := scytale.Frequency(text)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "LETTER\tCOUNT\tPERCENT\tENGLISH\t")
	for _, lc := range h.Ranked() {
		fmt.Fprintf(tw, "%c\t%d\t%.2f\t%.2f\t\n", lc.Letter, lc.Count, lc.Percent,
			scytale.EnglishFrequencies[lc.Letter-'A'])
	}
	fmt.Fprintf(tw, "total\t%d\t\t\t\n", h.Total)
	return tw.Flush()
}

func printShifts(w io.Writer, text string, top int) error {
	scores := scytale.RankShifts(text)
	if top < len(scores) {
		scores = scores[:top]
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SHIFT\tSCORE\tPLAINTEXT")
	for _, s := range scores {
		plain, err := scytale.Caesar(s.Shift).Decode(text)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%s\n", s.Shift, s.Score, plain)
	}
	return tw.Flush()
}
