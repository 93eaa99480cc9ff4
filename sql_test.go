package fourth_test

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lincolnpuzey/fourth"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(`CREATE TABLE events (id INTEGER PRIMARY KEY, local TEXT NOT NULL, utc TEXT)`); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestSQLRoundTrip(t *testing.T) {
	db := openDB(t)
	rows := []struct {
		local fourth.LocalDatetime
		utc   fourth.UTCDatetime
	}{
		{fourth.MustLocalAt(2020, time.March, 1, 0, 0, 0, 0), fourth.MustUTCAt(2020, time.March, 1, 0, 0, 0, 1)},
		{fourth.LocalMin, fourth.UTCMin},
		{fourth.LocalMax, fourth.UTCMax},
		{fourth.MustLocalAt(999, time.December, 31, 23, 0, 0, 0), fourth.MustUTCAt(1970, time.January, 1, 0, 0, 0, 0)},
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO events (local, utc) VALUES (?, ?)`, r.local, r.utc); err != nil {
			t.Fatal(err)
		}
	}

	res, err := db.Query(`SELECT local, utc FROM events ORDER BY local`)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()
	var got []fourth.LocalDatetime
	for res.Next() {
		var l fourth.LocalDatetime
		var u fourth.UTCDatetime
		if err := res.Scan(&l, &u); err != nil {
			t.Fatal(err)
		}
		got = append(got, l)
	}
	if err := res.Err(); err != nil {
		t.Fatal(err)
	}

	want := []fourth.LocalDatetime{rows[1].local, rows[3].local, rows[0].local, rows[2].local}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSQLScanNull(t *testing.T) {
	db := openDB(t)
	if _, err := db.Exec(`INSERT INTO events (local, utc) VALUES (?, NULL)`, fourth.LocalMin); err != nil {
		t.Fatal(err)
	}
	var u fourth.UTCDatetime
	err := db.QueryRow(`SELECT utc FROM events`).Scan(&u)
	if err == nil || !strings.Contains(err.Error(), "NULL") {
		t.Errorf("Scan of NULL: got %v, want NULL error", err)
	}
}

func TestScanTime(t *testing.T) {
	loc := time.FixedZone("X", 2*60*60)
	src := time.Date(2020, time.January, 1, 1, 0, 0, 1500, loc)

	var l fourth.LocalDatetime
	if err := l.Scan(src); err != nil {
		t.Fatal(err)
	}
	if want := fourth.MustLocalAt(2020, time.January, 1, 1, 0, 0, 1); !l.Equal(want) {
		t.Errorf("LocalDatetime.Scan = %v, want %v", l, want)
	}

	var u fourth.UTCDatetime
	if err := u.Scan(src); err != nil {
		t.Fatal(err)
	}
	if want := fourth.MustUTCAt(2019, time.December, 31, 23, 0, 0, 1); !u.Equal(want) {
		t.Errorf("UTCDatetime.Scan = %v, want %v", u, want)
	}

	if err := u.Scan(42); err == nil {
		t.Error("Scan(42) succeeded")
	}
}
