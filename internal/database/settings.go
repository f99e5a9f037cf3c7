package database

import "context"

// Settings live in their own key/value table outside the five record
// collections; the backup reminder timestamp is kept here so a collection
// wipe or restore does not disturb it.

func (s *Store) GetSetting(ctx context.Context, key string) (string, bool) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var value *string
	err := s.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return wrapErr(EntitySetting, "set", 0, err)
}
