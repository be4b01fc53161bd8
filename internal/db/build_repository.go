package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/dpscalc/internal/model"
)

// BuildSummary is a listing row of the builds table.
type BuildSummary struct {
	Name        string
	ClassID     string
	Level       int
	Fingerprint model.Fingerprint
	UpdatedAt   time.Time
}

// BuildRepository manages the builds table.
type BuildRepository struct {
	db *pgxpool.Pool
}

// NewBuildRepository creates a new BuildRepository.
func NewBuildRepository(db *pgxpool.Pool) *BuildRepository {
	return &BuildRepository{db: db}
}

// Save upserts a build by name. Returns false when a stored build with the same
// fingerprint already exists and nothing was written.
func (r *BuildRepository) Save(ctx context.Context, b model.Build) (bool, error) {
	if b.Name == "" {
		return false, errors.New("saving build: empty name")
	}
	skills := b.Character.SkillLevels
	if skills == nil {
		skills = map[string]int{}
	}
	fp := b.Fingerprint()

	query := `
		INSERT INTO builds (name, class_id, level, weapon_attack_bonus, skill_levels, stats, fingerprint)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO UPDATE SET
			class_id = EXCLUDED.class_id,
			level = EXCLUDED.level,
			weapon_attack_bonus = EXCLUDED.weapon_attack_bonus,
			skill_levels = EXCLUDED.skill_levels,
			stats = EXCLUDED.stats,
			fingerprint = EXCLUDED.fingerprint,
			updated_at = now()
		WHERE builds.fingerprint <> EXCLUDED.fingerprint
	`

	tag, err := r.db.Exec(ctx, query,
		b.Name, b.Character.ClassID, b.Character.Level, b.Character.WeaponAttackBonus,
		skills, b.Stats.Map(), fp[:],
	)
	if err != nil {
		return false, fmt.Errorf("saving build %q: %w", b.Name, err)
	}

	changed := tag.RowsAffected() > 0
	slog.Debug("build saved", "name", b.Name, "fingerprint", fp.Short(), "changed", changed)
	return changed, nil
}

// Load returns a build by name.
// Returns nil, nil if the build does not exist.
func (r *BuildRepository) Load(ctx context.Context, name string) (*model.Build, error) {
	query := `
		SELECT name, class_id, level, weapon_attack_bonus, skill_levels, stats
		FROM builds
		WHERE name = $1
	`

	var (
		b      model.Build
		skills map[string]int
		raw    map[string]float64
	)
	err := r.db.QueryRow(ctx, query, name).Scan(
		&b.Name, &b.Character.ClassID, &b.Character.Level, &b.Character.WeaponAttackBonus, &skills, &raw,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying build %q: %w", name, err)
	}

	stats, err := model.SnapshotFromMap(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding stats of build %q: %w", name, err)
	}
	b.Stats = stats
	if len(skills) > 0 {
		b.Character.SkillLevels = skills
	}
	return &b, nil
}

// List returns all stored builds ordered by name.
func (r *BuildRepository) List(ctx context.Context) ([]BuildSummary, error) {
	query := `
		SELECT name, class_id, level, fingerprint, updated_at
		FROM builds
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	defer rows.Close()

	var out []BuildSummary
	for rows.Next() {
		var (
			s  BuildSummary
			fp []byte
		)
		if err := rows.Scan(&s.Name, &s.ClassID, &s.Level, &fp, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning build row: %w", err)
		}
		copy(s.Fingerprint[:], fp)
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating build rows: %w", err)
	}

	return out, nil
}

// Delete removes a build by name. Deleting a missing build is not an error.
func (r *BuildRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM builds WHERE name = $1`, name); err != nil {
		return fmt.Errorf("deleting build %q: %w", name, err)
	}
	return nil
}
