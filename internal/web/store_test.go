package web

import (
	"testing"
	"time"

	"github.com/JonMunkholm/GradeSync/internal/core"
)

func TestResultStore(t *testing.T) {
	rs := newResultStore(time.Hour, time.Hour)
	defer rs.Stop()

	report := &core.MergeReport{Matched: 3}
	id := rs.Put([]byte("csv data"), report)
	if id == "" {
		t.Fatal("Put() returned empty id")
	}

	res := rs.Get(id)
	if res == nil {
		t.Fatal("Get() returned nil for stored result")
	}
	if string(res.Output) != "csv data" || res.Report.Matched != 3 {
		t.Errorf("stored result = %+v", res)
	}

	if rs.Get("unknown") != nil {
		t.Error("Get() returned a result for an unknown id")
	}
}

func TestResultStoreExpiry(t *testing.T) {
	rs := newResultStore(time.Millisecond, time.Hour)
	defer rs.Stop()

	id := rs.Put([]byte("x"), &core.MergeReport{})
	time.Sleep(5 * time.Millisecond)

	if rs.Get(id) != nil {
		t.Error("Get() returned an expired result")
	}
}
