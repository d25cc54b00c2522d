package inbox

import (
	"hub/gateway"
)

// View selects which partition of the message set is displayed.
type View string

const (
	ViewUnread View = "unread"
	ViewRead   View = "read"
)

// PageSize is the fixed number of messages shown per page.
const PageSize = 5

// State is the inbox view state: the last fetched message set, the active
// partition, the page within it and the message open in the detail view.
// The partitions are always recomputed from the full set, never patched in
// place; after any mutation the set is re-fetched wholesale, so displayed
// counts cannot drift from server state.
type State struct {
	messages []gateway.Message
	view     View
	page     int
	selected string
}

// NewState returns the initial state: unread view, page 1, nothing selected.
func NewState() *State {
	return &State{view: ViewUnread, page: 1}
}

// SetMessages replaces the message set wholesale ("invalidate and reload").
func (s *State) SetMessages(msgs []gateway.Message) {
	s.messages = msgs
}

// Messages returns the full fetched set.
func (s *State) Messages() []gateway.Message {
	return s.messages
}

// Partition splits the set by the isRead flag. Every message lands in
// exactly one of the two slices.
func (s *State) Partition() (unread, read []gateway.Message) {
	for _, m := range s.messages {
		if m.IsRead {
			read = append(read, m)
		} else {
			unread = append(unread, m)
		}
	}
	return unread, read
}

// UnreadCount returns the size of the unread partition.
func (s *State) UnreadCount() int {
	unread, _ := s.Partition()
	return len(unread)
}

// ReadCount returns the size of the read partition.
func (s *State) ReadCount() int {
	_, read := s.Partition()
	return len(read)
}

// View returns the active view.
func (s *State) View() View {
	return s.view
}

// SwitchView activates a partition. Switching always resets the page to 1;
// there is no per-partition page memory. Unknown views are ignored.
func (s *State) SwitchView(v View) {
	if v != ViewUnread && v != ViewRead {
		return
	}
	if v == s.view {
		return
	}
	s.view = v
	s.page = 1
}

// Active returns the active partition.
func (s *State) Active() []gateway.Message {
	unread, read := s.Partition()
	if s.view == ViewRead {
		return read
	}
	return unread
}

// TotalPages returns ceil(partition size / PageSize).
func (s *State) TotalPages() int {
	n := len(s.Active())
	return (n + PageSize - 1) / PageSize
}

// Page returns the current page clamped to [1, max(1, TotalPages)].
func (s *State) Page() int {
	page := s.page
	if page < 1 {
		page = 1
	}
	total := s.TotalPages()
	if total < 1 {
		total = 1
	}
	if page > total {
		page = total
	}
	return page
}

// SetPage moves to the requested page. Out-of-range requests are ignored
// and the prior valid page is retained.
func (s *State) SetPage(p int) {
	if p < 1 || p > s.TotalPages() {
		return
	}
	s.page = p
}

// PageMessages returns the slice of the active partition for the current page.
func (s *State) PageMessages() []gateway.Message {
	active := s.Active()
	start := (s.Page() - 1) * PageSize
	if start >= len(active) {
		return nil
	}
	end := start + PageSize
	if end > len(active) {
		end = len(active)
	}
	return active[start:end]
}

// ShowPagination reports whether pagination controls should render at all.
// They are hidden when the active partition fits on zero or one page.
func (s *State) ShowPagination() bool {
	return s.TotalPages() > 1
}

// Select opens a message in the detail view. Selecting an id that is not
// in the fetched set is a no-op and reports false.
func (s *State) Select(id string) bool {
	for _, m := range s.messages {
		if m.ID == id {
			s.selected = id
			return true
		}
	}
	return false
}

// Selected returns the message open in the detail view, nil when closed.
func (s *State) Selected() *gateway.Message {
	if s.selected == "" {
		return nil
	}
	for i, m := range s.messages {
		if m.ID == s.selected {
			return &s.messages[i]
		}
	}
	return nil
}

// CloseDetail closes the detail view without mutating anything else.
func (s *State) CloseDetail() {
	s.selected = ""
}

// CanDelete reports whether the delete action is offered for a message.
// Unread messages cannot be deleted; they must be read first.
func CanDelete(m *gateway.Message) bool {
	return m.IsRead
}
