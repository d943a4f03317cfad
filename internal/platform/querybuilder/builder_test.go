package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("users").
		Where(Eq("group_id", "g1"), IsNull("deleted_at")).
		OrderBy("total_points DESC", "name ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM users WHERE group_id = $1 AND deleted_at IS NULL ORDER BY total_points DESC, name ASC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "g1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("predictions").
		Columns("user_id", "match_id", "pick").
		Values("u1", "m1", "DRAW").
		Suffix("ON CONFLICT (user_id, match_id) DO UPDATE SET pick = EXCLUDED.pick").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO predictions (user_id, match_id, pick) VALUES ($1, $2, $3) ON CONFLICT (user_id, match_id) DO UPDATE SET pick = EXCLUDED.pick"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "u1" || args[1] != "m1" || args[2] != "DRAW" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("users").
		Set("total_points", 4).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "u1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE users SET total_points = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 4 || args[1] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("predictions").
		Where(Eq("user_id", "u1"), Eq("match_id", "m1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM predictions WHERE user_id = $1 AND match_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilderRequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("predictions").ToSQL(); err == nil {
		t.Fatal("expected unconditional delete to be rejected")
	}
}
