// events.go defines the event types for extension notifications.
//
// Separated from extension.go to isolate the event system. Events let
// extensions react to page changes (for example rebuilding the site) without
// the site service knowing about them.
//
// Design: Events are fire-and-forget notifications, not approval requests.
// Extensions observe changes after they are on disk and cannot veto them.

package extension

// EventType identifies the kind of event.
type EventType string

const (
	EventPageWrite  EventType = "page:write"
	EventPageCreate EventType = "page:create"
	EventPageRemove EventType = "page:remove"
	EventSiteBuild  EventType = "site:build"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
	EventPath() string
}

// PageWriteEvent is fired after an existing page's content is replaced.
type PageWriteEvent struct {
	URL     string
	Path    string
	Content string
}

func (e PageWriteEvent) EventType() EventType { return EventPageWrite }
func (e PageWriteEvent) EventPath() string    { return e.Path }

// PageCreateEvent is fired after a section, subsection or page is created and
// added to the navigation. Path is a directory for sections and subsections.
type PageCreateEvent struct {
	Name string
	Kind string
	Path string
}

func (e PageCreateEvent) EventType() EventType { return EventPageCreate }
func (e PageCreateEvent) EventPath() string    { return e.Path }

// PageRemoveEvent is fired after a page's file and nav entry are removed.
type PageRemoveEvent struct {
	URL  string
	Path string
}

func (e PageRemoveEvent) EventType() EventType { return EventPageRemove }
func (e PageRemoveEvent) EventPath() string    { return e.Path }

// SiteBuildEvent is fired after a build finishes, whatever its exit code.
type SiteBuildEvent struct {
	Output   string
	ExitCode int
}

func (e SiteBuildEvent) EventType() EventType { return EventSiteBuild }
func (e SiteBuildEvent) EventPath() string    { return e.Output }

// EventHandler is implemented by extensions that want to receive events.
type EventHandler interface {
	HandleEvent(ctx Context, e Event) error
}
