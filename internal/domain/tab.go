package domain

// Tab identifies a top-level screen.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabChat      Tab = "chat"
	TabStats     Tab = "stats"
	TabCalendar  Tab = "calendar"
	TabProfile   Tab = "profile"
)

// DefaultTab is the screen shown after a restart.
const DefaultTab = TabDashboard

// Tabs lists the known screens in navigation order.
func Tabs() []Tab {
	return []Tab{TabDashboard, TabChat, TabStats, TabCalendar, TabProfile}
}

// Valid reports whether t names a known screen.
func (t Tab) Valid() bool {
	for _, known := range Tabs() {
		if t == known {
			return true
		}
	}
	return false
}
