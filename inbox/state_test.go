package inbox

import (
	"fmt"
	"testing"

	"hub/gateway"
)

// makeMessages returns n unread followed by m read messages with ids u1..un
// and r1..rm.
func makeMessages(unread, read int) []gateway.Message {
	var msgs []gateway.Message
	for i := 1; i <= unread; i++ {
		msgs = append(msgs, gateway.Message{ID: fmt.Sprintf("u%d", i), Subject: "unread"})
	}
	for i := 1; i <= read; i++ {
		msgs = append(msgs, gateway.Message{ID: fmt.Sprintf("r%d", i), Subject: "read", IsRead: true})
	}
	return msgs
}

func TestPartitionCoversEveryMessage(t *testing.T) {
	s := NewState()
	s.SetMessages(makeMessages(7, 3))

	unread, read := s.Partition()
	if len(unread) != 7 || len(read) != 3 {
		t.Fatalf("partition sizes = %d/%d, want 7/3", len(unread), len(read))
	}

	seen := map[string]bool{}
	for _, m := range unread {
		if m.IsRead {
			seen[m.ID] = true
			t.Errorf("read message %s in unread partition", m.ID)
		}
		seen[m.ID] = true
	}
	for _, m := range read {
		if !m.IsRead {
			t.Errorf("unread message %s in read partition", m.ID)
		}
		if seen[m.ID] {
			t.Errorf("message %s in both partitions", m.ID)
		}
		seen[m.ID] = true
	}
	if len(seen) != 10 {
		t.Errorf("partitions cover %d messages, want 10", len(seen))
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		unread int
		want   int
	}{
		{0, 0},
		{1, 1},
		{5, 1},
		{6, 2},
		{10, 2},
		{11, 3},
	}
	for _, tt := range tests {
		s := NewState()
		s.SetMessages(makeMessages(tt.unread, 0))
		if got := s.TotalPages(); got != tt.want {
			t.Errorf("TotalPages with %d messages = %d, want %d", tt.unread, got, tt.want)
		}
	}
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.View() != ViewUnread {
		t.Errorf("initial view = %q, want unread", s.View())
	}
	if s.Page() != 1 {
		t.Errorf("initial page = %d, want 1", s.Page())
	}
	if s.Selected() != nil {
		t.Error("initial state has a selected message")
	}
}

func TestSwitchViewResetsPage(t *testing.T) {
	s := NewState()
	s.SetMessages(makeMessages(12, 8))

	s.SetPage(3)
	if s.Page() != 3 {
		t.Fatalf("page = %d, want 3", s.Page())
	}

	s.SwitchView(ViewRead)
	if s.View() != ViewRead {
		t.Fatalf("view = %q, want read", s.View())
	}
	if s.Page() != 1 {
		t.Errorf("page after view switch = %d, want 1", s.Page())
	}
}

func TestSwitchViewSameOrUnknownIsNoop(t *testing.T) {
	s := NewState()
	s.SetMessages(makeMessages(12, 0))
	s.SetPage(2)

	s.SwitchView(ViewUnread)
	if s.Page() != 2 {
		t.Errorf("page after re-selecting active view = %d, want 2", s.Page())
	}

	s.SwitchView(View("archived"))
	if s.View() != ViewUnread || s.Page() != 2 {
		t.Errorf("unknown view changed state: view=%q page=%d", s.View(), s.Page())
	}
}

func TestSetPageIgnoresOutOfRange(t *testing.T) {
	s := NewState()
	s.SetMessages(makeMessages(7, 0)) // 2 pages

	s.SetPage(2)
	for _, p := range []int{0, -1, 3, 99} {
		s.SetPage(p)
		if s.Page() != 2 {
			t.Errorf("SetPage(%d) changed page to %d, want prior page 2", p, s.Page())
		}
	}
}

func TestPageClampedWhenSetShrinks(t *testing.T) {
	s := NewState()
	s.SetMessages(makeMessages(11, 0)) // 3 pages
	s.SetPage(3)

	// A refetch can shrink the partition under the current page.
	s.SetMessages(makeMessages(6, 0)) // 2 pages
	if got := s.Page(); got != 2 {
		t.Errorf("page after shrink = %d, want clamp to 2", got)
	}

	s.SetMessages(nil)
	if got := s.Page(); got != 1 {
		t.Errorf("page with empty set = %d, want 1", got)
	}
}

func TestPageMessages(t *testing.T) {
	s := NewState()
	s.SetMessages(makeMessages(7, 3))

	page1 := s.PageMessages()
	if len(page1) != 5 {
		t.Fatalf("page 1 has %d messages, want 5", len(page1))
	}
	if page1[0].ID != "u1" {
		t.Errorf("page 1 starts at %s, want u1", page1[0].ID)
	}

	s.SetPage(2)
	page2 := s.PageMessages()
	if len(page2) != 2 {
		t.Fatalf("page 2 has %d messages, want 2", len(page2))
	}
	if page2[0].ID != "u6" {
		t.Errorf("page 2 starts at %s, want u6", page2[0].ID)
	}

	s.SwitchView(ViewRead)
	if got := len(s.PageMessages()); got != 3 {
		t.Errorf("read page 1 has %d messages, want 3", got)
	}
}

func TestShowPagination(t *testing.T) {
	tests := []struct {
		unread int
		want   bool
	}{
		{0, false},
		{3, false},
		{5, false},
		{6, true},
	}
	for _, tt := range tests {
		s := NewState()
		s.SetMessages(makeMessages(tt.unread, 0))
		if got := s.ShowPagination(); got != tt.want {
			t.Errorf("ShowPagination with %d messages = %v, want %v", tt.unread, got, tt.want)
		}
	}
}

func TestSelectUnknownIDIsNoop(t *testing.T) {
	s := NewState()
	s.SetMessages(makeMessages(2, 0))

	if s.Select("nope") {
		t.Error("Select of unknown id reported success")
	}
	if s.Selected() != nil {
		t.Error("unknown id left a selection")
	}

	if !s.Select("u2") {
		t.Fatal("Select of known id failed")
	}
	if m := s.Selected(); m == nil || m.ID != "u2" {
		t.Errorf("Selected = %v, want u2", m)
	}

	s.CloseDetail()
	if s.Selected() != nil {
		t.Error("CloseDetail left a selection")
	}
}

func TestCanDelete(t *testing.T) {
	if CanDelete(&gateway.Message{IsRead: false}) {
		t.Error("unread message reported deletable")
	}
	if !CanDelete(&gateway.Message{IsRead: true}) {
		t.Error("read message reported not deletable")
	}
}
