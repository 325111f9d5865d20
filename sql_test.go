package uuid

import (
	"database/sql"
	"testing"

	guuid "github.com/google/uuid"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	// Each connection gets its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`CREATE TABLE ids (id BLOB, label TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestUUID_SQLite_BlobRoundtrip(t *testing.T) {
	db := openTestDB(t)

	want := []UUID{Nil, testUUID, FromGoogle(guuid.New())}
	for i, u := range want {
		if _, err := db.Exec(`INSERT INTO ids (rowid, id) VALUES (?, ?)`, i+1, u); err != nil {
			t.Fatalf("insert %s: %v", u, err)
		}
	}

	for i, u := range want {
		var got UUID
		if err := db.QueryRow(`SELECT id FROM ids WHERE rowid = ?`, i+1).Scan(&got); err != nil {
			t.Fatalf("select %s: %v", u, err)
		}
		if got != u {
			t.Errorf("roundtrip = %s, want %s", got, u)
		}
	}

	var n int
	if err := db.QueryRow(`SELECT length(id) FROM ids WHERE rowid = 2`).Scan(&n); err != nil {
		t.Fatalf("select length: %v", err)
	}
	if n != 16 {
		t.Errorf("stored length = %d, want 16", n)
	}
}

func TestUUID_SQLite_TextColumn(t *testing.T) {
	db := openTestDB(t)

	forms := []string{testUUID.Hyphenated(), testUUID.Simple(), testUUID.URN(), testUUID.Braced()}
	for _, s := range forms {
		if _, err := db.Exec(`INSERT INTO ids (label) VALUES (?)`, s); err != nil {
			t.Fatalf("insert %q: %v", s, err)
		}
	}

	rows, err := db.Query(`SELECT label FROM ids ORDER BY rowid`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var got UUID
		if err := rows.Scan(&got); err != nil {
			t.Fatalf("scan row %d: %v", count, err)
		}
		if got != testUUID {
			t.Errorf("row %d = %s, want %s", count, got, testUUID)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	if count != len(forms) {
		t.Errorf("scanned %d rows, want %d", count, len(forms))
	}
}

func TestUUID_SQLite_NullAndMalformed(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec(`INSERT INTO ids (id, label) VALUES (NULL, 'F9168C5E-CEB2-4faa-BGBF-329BF39FA1E4')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got := testUUID
	if err := db.QueryRow(`SELECT id FROM ids`).Scan(&got); err != nil {
		t.Fatalf("scan NULL: %v", err)
	}
	if !got.IsNil() {
		t.Errorf("scan NULL = %s, want nil UUID", got)
	}

	if err := db.QueryRow(`SELECT label FROM ids`).Scan(&got); err == nil {
		t.Error("scan malformed label: error = nil")
	}
}
