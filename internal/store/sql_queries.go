// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const localStorageTable = "local_storage"

var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return sqlb.Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertValueQuery(key, value string) (string, []any, error) {
	return sqlb.Insert(localStorageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteValuesQuery(keys ...string) (string, []any, error) {
	return sqlb.Delete(localStorageTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}

func buildListKeysQuery() (string, []any, error) {
	return sqlb.Select("key").
		From(localStorageTable).
		OrderBy("key").
		ToSql()
}
