// Package report collects findings from the checkers, groups them by kind and
// decides the exit status of a run.
package report

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"namecheck/internal/finding"
)

// Severity of a finding kind.
type Severity string

const (
	SeverityFatal   Severity = "fatal"
	SeverityWarning Severity = "warning"
)

// Policy decides which kinds fail a run.
type Policy struct {
	Fatal          map[finding.Kind]bool
	FailOnWarnings bool
}

// DefaultPolicy treats invalid Quran citations as fatal and everything else
// as a warning.
func DefaultPolicy() Policy {
	return Policy{Fatal: map[finding.Kind]bool{finding.InvalidReference: true}}
}

// Severity returns the severity of kind under p.
func (p Policy) Severity(kind finding.Kind) Severity {
	if p.Fatal[kind] {
		return SeverityFatal
	}
	return SeverityWarning
}

// Group is every finding of one kind, in arrival order.
type Group struct {
	Kind     finding.Kind      `json:"kind"`
	Severity Severity          `json:"severity"`
	Findings []finding.Finding `json:"findings"`
}

// Report accumulates findings for one run.
type Report struct {
	Title    string
	Policy   Policy
	findings []finding.Finding
	checked  map[string]int
}

// New creates an empty report.
func New(title string, policy Policy) *Report {
	return &Report{Title: title, Policy: policy, checked: make(map[string]int)}
}

// Add appends findings in the order given.
func (r *Report) Add(findings ...finding.Finding) {
	r.findings = append(r.findings, findings...)
}

// Checked records how many items of a category were examined, for the
// summary line.
func (r *Report) Checked(what string, n int) {
	r.checked[what] += n
}

// Findings returns every finding in arrival order.
func (r *Report) Findings() []finding.Finding {
	return r.findings
}

// Groups returns non-empty groups in kind declaration order.
func (r *Report) Groups() []Group {
	byKind := make(map[finding.Kind][]finding.Finding)
	for _, f := range r.findings {
		byKind[f.Kind] = append(byKind[f.Kind], f)
	}
	var out []Group
	for _, k := range finding.Kinds() {
		if fs := byKind[k]; len(fs) > 0 {
			out = append(out, Group{Kind: k, Severity: r.Policy.Severity(k), Findings: fs})
		}
	}
	return out
}

// Passed reports whether the run produced no findings at all.
func (r *Report) Passed() bool {
	return len(r.findings) == 0
}

// Counts returns the number of fatal and warning findings.
func (r *Report) Counts() (fatal, warnings int) {
	for _, f := range r.findings {
		if r.Policy.Severity(f.Kind) == SeverityFatal {
			fatal++
		} else {
			warnings++
		}
	}
	return fatal, warnings
}

// ExitCode is 1 when fatal findings exist (or warnings under
// FailOnWarnings), otherwise 0.
func (r *Report) ExitCode() int {
	fatal, warnings := r.Counts()
	if fatal > 0 || (r.Policy.FailOnWarnings && warnings > 0) {
		return 1
	}
	return 0
}

// WriteText prints the human-readable report.
func (r *Report) WriteText(w io.Writer) error {
	pw := &printer{w: w}
	if r.Title != "" {
		pw.printf("%s\n", r.Title)
	}
	for _, what := range sortedKeys(r.checked) {
		pw.printf("Checked %d %s\n", r.checked[what], what)
	}
	if r.Passed() {
		pw.printf("OK: no issues found\n")
		return pw.err
	}

	fatal, warnings := r.Counts()
	pw.printf("Issues: %d fatal, %d warnings\n", fatal, warnings)
	for _, g := range r.Groups() {
		pw.printf("\n%s (%d, %s)\n", g.Kind, len(g.Findings), g.Severity)
		for _, f := range g.Findings {
			pw.printf("- %s: %s\n", f.Subject, f.Message)
			if len(f.Related) > 0 && f.Kind != finding.DuplicateCode {
				pw.printf("    %s: %s\n", relatedLabel(f.Kind), strings.Join(f.Related, ", "))
			}
		}
	}
	return pw.err
}

// WriteJSON prints the report as a single JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	fatal, warnings := r.Counts()
	groups := r.Groups()
	if groups == nil {
		groups = []Group{}
	}
	payload := struct {
		Title    string         `json:"title,omitempty"`
		Passed   bool           `json:"passed"`
		Fatal    int            `json:"fatal"`
		Warnings int            `json:"warnings"`
		Checked  map[string]int `json:"checked,omitempty"`
		Groups   []Group        `json:"groups"`
	}{r.Title, r.Passed(), fatal, warnings, r.checked, groups}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// WriteFile saves the JSON report to path, gzip-compressed when path ends in
// ".gz". Parent directories are created as needed.
func (r *Report) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".gz") {
		if err := r.WriteJSON(f); err != nil {
			return err
		}
		return f.Close()
	}
	gw, _ := gzip.NewWriterLevel(f, gzip.BestSpeed)
	if err := r.WriteJSON(gw); err != nil {
		return err
	}
	if err := gw.Close(); err != nil {
		return err
	}
	return f.Close()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func relatedLabel(kind finding.Kind) string {
	switch kind {
	case finding.DuplicateSlug:
		return "declared in"
	case finding.MissingMappingTarget:
		return "referenced by"
	case finding.EmptyReferenceList, finding.InvalidReference:
		return "source"
	}
	return "related"
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
