package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phatneglo/uac-server/internal/models"
)

// ListUserLevels returns all access levels ordered by ID
func (s *Storage) ListUserLevels(ctx context.Context) ([]*models.UserLevel, error) {
	query := `SELECT user_level_id, name, description FROM user_levels ORDER BY user_level_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user levels: %w", err)
	}
	defer rows.Close()

	var levels []*models.UserLevel
	for rows.Next() {
		level := &models.UserLevel{}
		var description sql.NullString

		if err := rows.Scan(&level.ID, &level.Name, &description); err != nil {
			return nil, fmt.Errorf("failed to scan user level: %w", err)
		}
		level.Description = description.String

		levels = append(levels, level)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user levels: %w", err)
	}

	return levels, nil
}
