package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/ritual/internal/models"
)

func (s *Store) GetProgress() (models.UserProgress, error) {
	row := s.db.QueryRow(`SELECT total_xp, unlocked_badges FROM user_progress WHERE id = 1`)

	var p models.UserProgress
	var badgesJSON string
	if err := row.Scan(&p.TotalXP, &badgesJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProgress{UnlockedBadges: []string{}}, nil
		}
		return models.UserProgress{}, err
	}

	if err := json.Unmarshal([]byte(badgesJSON), &p.UnlockedBadges); err != nil {
		return models.UserProgress{}, fmt.Errorf("failed to parse unlocked_badges: %w", err)
	}
	if p.UnlockedBadges == nil {
		p.UnlockedBadges = []string{}
	}

	return p, nil
}

func (s *Store) SaveProgress(p models.UserProgress) error {
	badgesJSON, err := json.Marshal(p.UnlockedBadges)
	if err != nil {
		return fmt.Errorf("failed to serialize unlocked_badges: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO user_progress (id, total_xp, unlocked_badges)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			total_xp = EXCLUDED.total_xp,
			unlocked_badges = EXCLUDED.unlocked_badges`,
		p.TotalXP, string(badgesJSON))
	return err
}
