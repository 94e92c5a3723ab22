package pandora

import "fmt"

// View is a top-level screen of the companion.
type View int

const (
	ViewChat     View = iota // Conversation screen (initial view)
	ViewInsights             // Mood insights dashboard
	ViewRituals              // Ritual lab
)

// String returns the lowercase view name.
func (v View) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewInsights:
		return "insights"
	case ViewRituals:
		return "rituals"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Title returns the navigation label of the view.
func (v View) Title() string {
	switch v {
	case ViewChat:
		return "New Chat"
	case ViewInsights:
		return "Mood Insights"
	case ViewRituals:
		return "Ritual Lab"
	default:
		return v.String()
	}
}

// ParseView parses the output of View.String.
func ParseView(s string) (View, error) {
	switch s {
	case "chat":
		return ViewChat, nil
	case "insights":
		return ViewInsights, nil
	case "rituals":
		return ViewRituals, nil
	default:
		return 0, fmt.Errorf("unknown view %q", s)
	}
}

// Intent is a sealed interface for navigation requests. The unexported
// marker method prevents external implementations.
type Intent interface {
	apply(Navigation) Navigation
}

// NewChat requests a fresh conversation: CHAT view, no selected session.
type NewChat struct{}

// ResumeSession requests the CHAT view for a past session.
type ResumeSession struct {
	ID string
}

// SwitchView requests a top-level view. The selected session is kept.
type SwitchView struct {
	View View
}

// OpenWellnessCheck requests the wellness check overlay. It does not change
// the view or the selected session; the overlay is owned by the caller.
type OpenWellnessCheck struct{}

func (NewChat) apply(Navigation) Navigation {
	return Navigation{view: ViewChat}
}

func (i ResumeSession) apply(n Navigation) Navigation {
	if i.ID == "" {
		return NewChat{}.apply(n)
	}
	return Navigation{view: ViewChat, selected: i.ID}
}

func (i SwitchView) apply(n Navigation) Navigation {
	n.view = i.View
	return n
}

func (OpenWellnessCheck) apply(n Navigation) Navigation { return n }

// Navigation is the active view together with the selected session.
// Both fields change only through intents, so no observer can see a CHAT
// view for a new chat that still points at an old session.
// The zero value is the initial state: CHAT with no session selected.
type Navigation struct {
	view     View
	selected string // empty means no resumed session
}

// NewNavigation returns the initial navigation state.
func NewNavigation() Navigation { return Navigation{view: ViewChat} }

// View returns the active view.
func (n Navigation) View() View { return n.view }

// SelectedSession returns the resumed session id. ok is false when the user
// is starting fresh.
func (n Navigation) SelectedSession() (id string, ok bool) {
	return n.selected, n.selected != ""
}

// Apply returns the navigation state after intent.
func (n Navigation) Apply(intent Intent) Navigation {
	if intent == nil {
		return n
	}
	return intent.apply(n)
}

// GoTo switches to view.
func (n Navigation) GoTo(view View) Navigation { return n.Apply(SwitchView{View: view}) }

// StartNewChat switches to CHAT and clears the selected session.
func (n Navigation) StartNewChat() Navigation { return n.Apply(NewChat{}) }

// ResumeSession switches to CHAT with id selected.
func (n Navigation) ResumeSession(id string) Navigation {
	return n.Apply(ResumeSession{ID: id})
}
