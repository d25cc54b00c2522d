package data

import (
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "data-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("DATA_DIR", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestSaveAndLoadFile(t *testing.T) {
	if err := Save("greeting", "hello"); err != nil {
		t.Fatal(err)
	}

	b, err := LoadFile("greeting")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "hello" {
		t.Errorf("loaded %q, want hello", b)
	}
}

func TestSaveJSONRoundTrip(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2}
	if err := SaveJSON("counts.json", in); err != nil {
		t.Fatal(err)
	}

	b, err := LoadFile("counts.json")
	if err != nil {
		t.Fatal(err)
	}

	var out map[string]int
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Errorf("round trip = %v", out)
	}
}

func TestInsertAndListAPICalls(t *testing.T) {
	calls := []*APICall{
		{Time: time.Now().Add(-2 * time.Minute), Service: "contact_api", Method: "GET", URL: "http://x/api/contact/", Status: 200, Duration: 40 * time.Millisecond},
		{Time: time.Now().Add(-1 * time.Minute), Service: "contact_api", Method: "PATCH", URL: "http://x/api/contact/m1", Status: 200, Duration: 15 * time.Millisecond},
		{Time: time.Now(), Service: "contact_api", Method: "DELETE", URL: "http://x/api/contact/m2", Status: 500, Duration: 90 * time.Millisecond, Error: "contact_api returned status 500"},
	}
	for _, c := range calls {
		if err := InsertAPICall(c); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ListAPICalls(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) < 3 {
		t.Fatalf("listed %d calls, want at least 3", len(got))
	}

	// Newest first.
	if got[0].Method != "DELETE" || got[0].Status != 500 {
		t.Errorf("newest call = %+v, want the DELETE", got[0])
	}
	if got[0].Error == "" {
		t.Error("error column did not round trip")
	}
	if got[0].Duration != 90*time.Millisecond {
		t.Errorf("duration = %v, want 90ms", got[0].Duration)
	}

	// Limit applies.
	limited, err := ListAPICalls(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("ListAPICalls(2) returned %d records", len(limited))
	}
}

func TestInsertAndListSysLog(t *testing.T) {
	lines := []*SysLogLine{
		{Time: time.Now().Add(-time.Minute), Package: "inbox", Message: "Error fetching messages: boom"},
		{Time: time.Now(), Package: "admin", Message: "Failed to load api call log: closed"},
	}
	for _, l := range lines {
		if err := InsertSysLog(l); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ListSysLog(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) < 2 {
		t.Fatalf("listed %d lines, want at least 2", len(got))
	}

	// Newest first.
	if got[0].Package != "admin" {
		t.Errorf("newest line = %+v, want the admin entry", got[0])
	}
	if got[1].Message != "Error fetching messages: boom" {
		t.Errorf("second line = %+v", got[1])
	}

	limited, err := ListSysLog(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("ListSysLog(1) returned %d lines", len(limited))
	}
}
