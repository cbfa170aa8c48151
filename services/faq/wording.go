package faq

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"rsc.io/pdf"
)

var (
	sentenceEnd = regexp.MustCompile(`([.!?])\s+`)
	wordRe      = regexp.MustCompile(`[a-z][a-z'-]+`)
)

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "you": true, "your": true, "what": true,
	"does": true, "can": true, "will": true, "with": true, "this": true, "that": true, "have": true,
	"how": true, "any": true, "from": true, "when": true, "about": true, "there": true, "is": true,
	"my": true, "me": true, "do": true, "it": true, "of": true, "to": true, "in": true, "on": true,
	"be": true, "if": true, "or": true, "an": true, "am": true, "we": true, "our": true, "tell": true,
	"explain": true, "please": true, "would": true, "could": true, "which": true, "who": true,
}

// Wording is the searchable text of the policy wording document.
type Wording struct {
	passages []string
	terms    [][]string
}

// LoadWording extracts the text of every page of a policy wording PDF.
func LoadWording(path string) (*Wording, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		p := doc.Page(i)
		if p.V.IsNull() {
			continue
		}
		b.WriteString(pageText(p.Content().Text))
		b.WriteString("\n")
	}
	return NewWording(b.String()), nil
}

// pageText joins glyph runs, adding a space where the gap between runs or a
// line change suggests one.
func pageText(texts []pdf.Text) string {
	var b strings.Builder
	for i, t := range texts {
		if i > 0 {
			prev := texts[i-1]
			gap := t.X - (prev.X + prev.W)
			if math.Abs(t.Y-prev.Y) > prev.FontSize/2 || gap > prev.FontSize*0.15 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
	}
	return b.String()
}

// NewWording splits text into passages of up to three sentences.
func NewWording(text string) *Wording {
	text = strings.Join(strings.Fields(text), " ")
	sentences := strings.Split(sentenceEnd.ReplaceAllString(text, "$1\n"), "\n")
	sentences = lo.Filter(sentences, func(s string, _ int) bool { return strings.TrimSpace(s) != "" })

	w := &Wording{}
	for _, chunk := range lo.Chunk(sentences, 3) {
		passage := strings.Join(chunk, " ")
		w.passages = append(w.passages, passage)
		w.terms = append(w.terms, terms(passage))
	}
	return w
}

// Len returns the number of passages.
func (w *Wording) Len() int {
	if w == nil {
		return 0
	}
	return len(w.passages)
}

// Search returns up to n passages sharing the most terms with the question.
func (w *Wording) Search(question string, n int) []string {
	if w.Len() == 0 || n <= 0 {
		return nil
	}
	q := terms(question)
	if len(q) == 0 {
		return nil
	}

	type scored struct {
		idx   int
		score int
	}
	var hits []scored
	for i, pt := range w.terms {
		score := lo.CountBy(q, func(t string) bool { return lo.Contains(pt, t) })
		if score > 0 {
			hits = append(hits, scored{i, score})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })

	out := make([]string, 0, n)
	for _, h := range lo.Slice(hits, 0, n) {
		out = append(out, w.passages[h.idx])
	}
	return out
}

func terms(s string) []string {
	words := wordRe.FindAllString(strings.ToLower(s), -1)
	words = lo.Filter(words, func(w string, _ int) bool { return len(w) > 2 && !stopWords[w] })
	return lo.Uniq(lo.Map(words, func(w string, _ int) string { return stem(w) }))
}

// stem drops the plural and common verb endings so "claims" matches "claim".
func stem(w string) string {
	for _, suffix := range []string{"ing", "ed", "es", "s"} {
		if len(w) > len(suffix)+3 && strings.HasSuffix(w, suffix) {
			return strings.TrimSuffix(w, suffix)
		}
	}
	return w
}
