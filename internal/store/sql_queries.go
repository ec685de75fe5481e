package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-kv-keeper/models"
)

// entryColumns lists the columns of the kv table in scan order.
var entryColumns = []string{"key", "value", "created_at", "updated_at"}

// buildUpsertQuery renders an INSERT ... ON CONFLICT statement that stores
// entry under its key or overwrites the previous value. The conflict clause
// and RETURNING are understood by both PostgreSQL and SQLite (3.35+), so a
// single builder serves both drivers. On overwrite the row keeps its original
// created_at; RETURNING reports the timestamps actually persisted.
func buildUpsertQuery(builder sq.StatementBuilderType, entry models.Entry) (string, []any, error) {
	return builder.
		Insert(entry.TableName()).
		Columns(entryColumns...).
		Values(entry.Key, entry.Value, entry.CreatedAt, entry.UpdatedAt).
		Suffix(`ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
			RETURNING key, value, created_at, updated_at`).
		ToSql()
}

// buildReadQuery renders a SELECT of a single entry by key.
func buildReadQuery(builder sq.StatementBuilderType, key string) (string, []any, error) {
	return builder.
		Select(entryColumns...).
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildUpdateQuery renders an UPDATE of the value and updated_at columns of
// an existing entry. RETURNING yields the persisted row; a miss produces no
// rows and surfaces as sql.ErrNoRows at scan time.
func buildUpdateQuery(builder sq.StatementBuilderType, entry models.Entry) (string, []any, error) {
	return builder.
		Update(entry.TableName()).
		Set("value", entry.Value).
		Set("updated_at", entry.UpdatedAt).
		Where(sq.Eq{"key": entry.Key}).
		Suffix(`RETURNING key, value, created_at, updated_at`).
		ToSql()
}

// buildRemoveQuery renders a DELETE of a single entry by key.
func buildRemoveQuery(builder sq.StatementBuilderType, key string) (string, []any, error) {
	return builder.
		Delete(models.Entry{}.TableName()).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// likeEscaper quotes the LIKE metacharacters and the escape character itself
// so a prefix is always matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildKeysQuery renders a listing of stored keys in lexicographic order.
// A non-empty prefix adds a LIKE filter with the prefix escaped, so `%` and
// `_` inside a key match themselves, same as the in-memory backend.
func buildKeysQuery(builder sq.StatementBuilderType, prefix string) (string, []any, error) {
	query := builder.
		Select("key").
		From(models.Entry{}.TableName()).
		OrderBy("key ASC")

	if prefix != "" {
		query = query.Where(sq.Expr(`key LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%"))
	}

	return query.ToSql()
}
