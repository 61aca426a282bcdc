package quiz

// ChapterStatus enumerates the closed set of chapter states shown to the
// student.
type ChapterStatus int

const (
	Locked ChapterStatus = iota
	Unlocked
	Completed
)

func (s ChapterStatus) String() string {
	switch s {
	case Locked:
		return "LOCKED"
	case Unlocked:
		return "UNLOCKED"
	case Completed:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}
