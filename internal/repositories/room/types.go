package room

// Document is one full snapshot of the shared record as delivered by the store
type Document struct {
	RoomID string

	// Version increases with every committed write; 0 means the room does not exist yet
	Version int64

	// Data is the raw nested document
	Data map[string]any
}

type GetInput struct {
	RoomID string
}

type GetOutput struct {
	Document *Document
}

type SubscribeInput struct {
	RoomID string

	// Handler is called from the subscribing goroutine for every snapshot
	Handler func(doc *Document)
}

type ReplaceInput struct {
	RoomID string
	Data   map[string]any
}

type UpdateInput struct {
	RoomID string

	// Values maps a /-separated path to its new value
	Values map[string]any

	// RequireExists lists paths that must be present when the write commits.
	// If any is missing nothing is written and ErrPathNotFound is returned.
	RequireExists []string

	// SkipMissing lists record paths whose values are dropped, rather than
	// recreating the record, when the record is gone at commit time
	SkipMissing []string
}

type RemoveInput struct {
	RoomID string
	Path   string
}

type PushInput struct {
	RoomID string
	Path   string
	Value  any
}

type PushOutput struct {
	// ID is the generated key the value was stored under
	ID string
}
