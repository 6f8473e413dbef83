package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-backend/models"
)

var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchSameTeam    = errors.New("match teams must be distinct")
	ErrMatchTeamInvalid = errors.New("match team conflict or invalid")
)

// TeamTally — агрегат по завершённым матчам одной команды.
type TeamTally struct {
	Wins   int
	Draws  int
	Played int
}

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error)
	TallyForTeam(ctx context.Context, teamID int) (TeamTally, error)
	DeleteAll(ctx context.Context) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

var matchConstraintErrors = map[string]error{
	"matches_distinct_teams_check": ErrMatchSameTeam,
	"matches_team_a_id_fkey":       ErrMatchTeamInvalid,
	"matches_team_b_id_fkey":       ErrMatchTeamInvalid,
	"matches_winner_id_fkey":       ErrMatchTeamInvalid,
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	if match.TeamAID == match.TeamBID {
		return ErrMatchSameTeam
	}

	query := `
		INSERT INTO matches (team_a_id, team_b_id, scheduled_time, location, is_completed, result, winner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		match.TeamAID,
		match.TeamBID,
		match.ScheduledTime,
		match.Location,
		match.IsCompleted,
		match.Result,
		match.WinnerID,
	).Scan(&match.ID)

	if err != nil {
		return mapConstraintError(err, matchConstraintErrors)
	}
	return nil
}

// ListByTournament возвращает матчи турнира по времени проведения,
// с подгруженными id/именами обеих команд.
func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error) {
	query := `
		SELECT
			m.id, m.team_a_id, m.team_b_id, m.scheduled_time, m.location, m.is_completed, m.result, m.winner_id,
			ta.name, tb.name
		FROM matches m
		JOIN tournament_matches tm ON tm.match_id = m.id
		JOIN teams ta ON ta.id = m.team_a_id
		JOIN teams tb ON tb.id = m.team_b_id
		WHERE tm.tournament_id = $1
		ORDER BY m.scheduled_time ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		var teamAName, teamBName string
		scanErr := rows.Scan(
			&match.ID,
			&match.TeamAID,
			&match.TeamBID,
			&match.ScheduledTime,
			&match.Location,
			&match.IsCompleted,
			&match.Result,
			&match.WinnerID,
			&teamAName,
			&teamBName,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		match.TeamA = &models.Team{ID: match.TeamAID, Name: teamAName}
		match.TeamB = &models.Team{ID: match.TeamBID, Name: teamBName}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

// TallyForTeam считает победы, ничьи и сыгранные матчи команды по
// завершённым матчам. Исход определяется ссылкой winner_id, не текстом result.
func (r *postgresMatchRepository) TallyForTeam(ctx context.Context, teamID int) (TeamTally, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE is_completed AND winner_id = $1),
			COUNT(*) FILTER (WHERE is_completed AND winner_id IS NULL),
			COUNT(*) FILTER (WHERE is_completed)
		FROM matches
		WHERE team_a_id = $1 OR team_b_id = $1`

	var tally TeamTally
	err := r.db.QueryRowContext(ctx, query, teamID).
		Scan(&tally.Wins, &tally.Draws, &tally.Played)
	if err != nil {
		return TeamTally{}, err
	}
	return tally, nil
}

func (r *postgresMatchRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM matches`)
	return err
}
