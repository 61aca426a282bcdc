// Package tracker mutates a student's progress counters and derives
// achievement unlocks from score, login, and study-time thresholds.
//
// Every operation is a pure in-memory mutation and never fails; persisting
// the record afterwards is the caller's responsibility.
package tracker

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/codetutor/internal/student"
)

const (
	// PassingScore is the minimum percentage required to advance past a
	// chapter or the final exam.
	PassingScore = 75
	// MasteryScore is the percentage from which a chapter counts as mastered.
	MasteryScore = 90
)

// Fixed achievement identifiers. Per-chapter achievements are formatted from
// the chapter number.
const (
	AchievementCourseCompleter  = "Course Completer"
	AchievementDailyLearner     = "Daily Learner"
	AchievementRegularUser      = "Regular User"
	AchievementDedicatedLearner = "Dedicated Learner"
	AchievementHourOfCode       = "Hour of Code"
	AchievementDedicatedScholar = "Dedicated Scholar"
)

const (
	regularUserLogins       = 5
	dedicatedLearnerLogins  = 10
	dailyLearnerGap         = 24 * time.Hour
	hourOfCodeMinutes       = 60
	dedicatedScholarMinutes = 300
)

// Tracker applies progress and achievement rules for a course with a fixed
// number of chapters.
type Tracker struct {
	ChapterCount int
}

func New(chapterCount int) *Tracker {
	return &Tracker{ChapterCount: chapterCount}
}

// RecordScore stores the most recent percentage score for a chapter,
// overwriting any previous value. Scores of at least MasteryScore grant
// "Chapter N Master"; otherwise scores of at least PassingScore grant
// "Chapter N Passer".
func (t *Tracker) RecordScore(r *student.Record, chapter, percent int) {
	r.Scores[chapter] = percent

	switch {
	case percent >= MasteryScore:
		r.GrantAchievement(fmt.Sprintf("Chapter %d Master", chapter))
	case percent >= PassingScore:
		r.GrantAchievement(fmt.Sprintf("Chapter %d Passer", chapter))
	}
}

// AdvanceProgress moves the unlocked-chapter marker forward. Progress never
// decreases and never exceeds the chapter count. Reaching the final chapter
// grants AchievementCourseCompleter.
func (t *Tracker) AdvanceProgress(r *student.Record, chapter int) {
	if chapter <= r.Progress || chapter > t.ChapterCount {
		return
	}
	r.Progress = chapter
	if chapter == t.ChapterCount {
		r.GrantAchievement(AchievementCourseCompleter)
	}
}

// RecordLogin counts a login at the given time. A gap of at least one day
// since the previous login grants AchievementDailyLearner. The login-count
// achievements trigger on the exact counts 5 and 10, not "at least".
func (t *Tracker) RecordLogin(r *student.Record, now time.Time) {
	if r.LastLogin != nil && now.Sub(*r.LastLogin) >= dailyLearnerGap {
		r.GrantAchievement(AchievementDailyLearner)
	}

	r.LoginCount++
	login := now
	r.LastLogin = &login

	switch r.LoginCount {
	case regularUserLogins:
		r.GrantAchievement(AchievementRegularUser)
	case dedicatedLearnerLogins:
		r.GrantAchievement(AchievementDedicatedLearner)
	}
}

// AddStudyTime accumulates study minutes. Crossing 60 total minutes grants
// AchievementHourOfCode, crossing 300 grants AchievementDedicatedScholar;
// the idempotent achievement set suppresses repeats on later calls.
func (t *Tracker) AddStudyTime(r *student.Record, minutes int) {
	r.TotalStudyTime += minutes

	if r.TotalStudyTime >= hourOfCodeMinutes {
		r.GrantAchievement(AchievementHourOfCode)
	}
	if r.TotalStudyTime >= dedicatedScholarMinutes {
		r.GrantAchievement(AchievementDedicatedScholar)
	}
}
