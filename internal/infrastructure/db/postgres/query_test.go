package postgres

import "testing"

func TestWhereBuilder(t *testing.T) {
	var b whereBuilder
	if b.clause() != "" {
		t.Fatalf("expected empty clause, got %q", b.clause())
	}

	b.add("status = $%d", "Reserved")
	b.add("room_id = $%d", int64(3))
	b.like("name", "deluxe")

	want := `WHERE status = $1 AND room_id = $2 AND name ILIKE '%' || $3 || '%'`
	if got := b.clause(); got != want {
		t.Fatalf("clause mismatch:\n got %q\nwant %q", got, want)
	}
	if len(b.args) != 3 || b.args[0] != "Reserved" || b.args[2] != "deluxe" {
		t.Fatalf("unexpected args: %v", b.args)
	}
}

func TestPage(t *testing.T) {
	if got := page(1, 20); got != "LIMIT 20 OFFSET 0" {
		t.Fatalf("unexpected first page: %q", got)
	}
	if got := page(3, 25); got != "LIMIT 25 OFFSET 50" {
		t.Fatalf("unexpected third page: %q", got)
	}
}

func TestPrefixList(t *testing.T) {
	got := prefixList("bk", "id, booking_no, status")
	want := "bk.id, bk.booking_no, bk.status"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrefixColumns(t *testing.T) {
	got := prefixColumns("rt", "id, code", "room_type")
	want := `rt.id AS "room_type.id", rt.code AS "room_type.code"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
