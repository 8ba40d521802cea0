package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"player-registry/internal/domain"
)

type Output struct {
	format string
	w      io.Writer
}

func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

func (o *Output) Players(ps []domain.Player) {
	if o.format == "json" {
		o.json(ps)
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTITLE\tRACE\tPROFESSION\tEXP\tLVL\tNEXT\tBIRTHDAY\tBANNED")
	for _, p := range ps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\t%t\n",
			p.ID, p.Name, p.Title, p.Race, p.Profession,
			p.Experience, p.Level, p.UntilNextLevel,
			p.Birthday.UTC().Format(time.DateOnly), p.Banned)
	}
	_ = tw.Flush()
}

func (o *Output) Player(p *domain.Player) { o.Players([]domain.Player{*p}) }

func (o *Output) Message(msg string) {
	if o.format == "json" {
		o.json(map[string]string{"message": msg})
		return
	}
	fmt.Fprintln(o.w, msg)
}

func (o *Output) Count(n int) {
	if o.format == "json" {
		o.json(map[string]int{"count": n})
		return
	}
	fmt.Fprintln(o.w, n)
}

func (o *Output) json(v any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
