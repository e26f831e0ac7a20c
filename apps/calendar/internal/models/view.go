package models

type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
)

func (mode ViewMode) IsValid() bool {
	return mode == ViewMonth || mode == ViewWeek
}
