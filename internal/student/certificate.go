package student

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/codetutor/internal/filex"
)

// ProgressBar renders a textual bar for a 0..1 ratio, e.g. [████----] 50.0%.
func ProgressBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(float64(width) * ratio)
	bar := strings.Repeat("█", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("[%s] %.1f%%", bar, ratio*100)
}

// Certificate renders the completion certificate for the record as plain
// text: name, date, per-chapter scores, achievements, and aggregate study
// statistics. The output is a human-readable artifact and is never parsed
// back by the system.
func Certificate(r *Record, date time.Time) string {
	var b strings.Builder

	line := strings.Repeat("=", 60)
	b.WriteString(line + "\n")
	b.WriteString(center("CERTIFICATE OF COMPLETION", 60) + "\n")
	b.WriteString(line + "\n\n")

	b.WriteString("THIS CERTIFICATE IS AWARDED TO:\n")
	b.WriteString("\t" + strings.ToUpper(r.Name) + "\n\n")
	b.WriteString("FOR SUCCESSFULLY COMPLETING THE PYTHON PROGRAMMING COURSE\n\n")
	b.WriteString("DATE: " + date.Format("January 2, 2006") + "\n\n")

	chapters := make([]int, 0, len(r.Scores))
	total := 0
	for ch, score := range r.Scores {
		chapters = append(chapters, ch)
		total += score
	}
	sort.Ints(chapters)

	b.WriteString("Chapter Scores:\n")
	for _, ch := range chapters {
		b.WriteString(fmt.Sprintf("  Chapter %d: %d%%\n", ch, r.Scores[ch]))
	}

	if len(chapters) > 0 {
		avg := float64(total) / float64(len(chapters)) / 100
		b.WriteString("\nOverall Performance:\n  " + ProgressBar(avg, 40) + "\n")
	}

	if len(r.Achievements) > 0 {
		b.WriteString("\nAchievements:\n")
		for _, a := range r.Achievements {
			b.WriteString("  * " + a + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nStudy Statistics:\n  Logins: %d\n  Study time: %d minutes\n",
		r.LoginCount, r.TotalStudyTime))

	b.WriteString("\n" + line + "\n")
	b.WriteString("Keep coding and never stop learning!\n")

	return b.String()
}

// WriteCertificate writes the certificate text file for the record into dir
// and returns its path. Generated once progress reaches completion.
func WriteCertificate(dir string, r *Record, date time.Time) (string, error) {
	if err := filex.EnsureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, "certificate_"+r.Username+".txt")
	if err := filex.WriteFileAtomic(path, []byte(Certificate(r, date)), 0o644); err != nil {
		return "", fmt.Errorf("write certificate for %s: %w", r.Username, err)
	}
	return path, nil
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
