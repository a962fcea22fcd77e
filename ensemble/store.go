package ensemble

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"
)

// Member is one ensemble entry: a recorded vibration signal and the
// operating condition it was captured at.
type Member struct {
	ID         int64
	Tag        string
	SampleRate float64
	SpeedHz    float64
	LoadKN     float64
	Signal     []float64
}

// ResponseRecord is one persisted receptive-field value: a fault family
// and signal column of one member.
type ResponseRecord struct {
	Fault  string
	Column int
	Value  float64
}

// Store persists ensemble members and their computed responses in a
// sqlite database. Writes are atomic per call; concurrent reads are
// safe under WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) an ensemble database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=NORMAL", path))
	if err != nil {
		return nil, fmt.Errorf("ensemble: opening database: %w", err)
	}

	if _, err := db.Exec(initSchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensemble: initializing schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddMember inserts a member and returns its assigned ID.
func (s *Store) AddMember(ctx context.Context, m Member) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertMemberSQL,
		m.Tag, m.SampleRate, m.SpeedHz, m.LoadKN, encodeSignal(m.Signal))
	if err != nil {
		return 0, fmt.Errorf("ensemble: inserting member: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ensemble: reading member id: %w", err)
	}

	return id, nil
}

// Member retrieves one member by ID.
func (s *Store) Member(ctx context.Context, id int64) (*Member, error) {
	var m Member
	var blob []byte

	row := s.db.QueryRowContext(ctx, selectMemberSQL, id)
	if err := row.Scan(&m.ID, &m.Tag, &m.SampleRate, &m.SpeedHz, &m.LoadKN, &blob); err != nil {
		return nil, fmt.Errorf("ensemble: reading member %d: %w", id, err)
	}

	signal, err := decodeSignal(blob)
	if err != nil {
		return nil, fmt.Errorf("ensemble: member %d: %w", id, err)
	}

	m.Signal = signal

	return &m, nil
}

// StoreResponses persists the response records of one member in a
// single transaction, replacing earlier values.
func (s *Store) StoreResponses(ctx context.Context, memberID int64, records []ResponseRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ensemble: beginning transaction: %w", err)
	}

	for _, r := range records {
		if _, err := tx.ExecContext(ctx, insertResponseSQL, memberID, r.Fault, r.Column, r.Value); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("ensemble: storing response for member %d: %w", memberID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ensemble: committing responses for member %d: %w", memberID, err)
	}

	return nil
}

// Responses retrieves the persisted response records of one member,
// ordered by fault and column.
func (s *Store) Responses(ctx context.Context, memberID int64) ([]ResponseRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectResponsesSQL, memberID)
	if err != nil {
		return nil, fmt.Errorf("ensemble: reading responses for member %d: %w", memberID, err)
	}
	defer rows.Close()

	var out []ResponseRecord

	for rows.Next() {
		var r ResponseRecord
		if err := rows.Scan(&r.Fault, &r.Column, &r.Value); err != nil {
			return nil, fmt.Errorf("ensemble: scanning response: %w", err)
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ensemble: iterating responses: %w", err)
	}

	return out, nil
}

// encodeSignal packs samples as little-endian float64.
func encodeSignal(signal []float64) []byte {
	out := make([]byte, 8*len(signal))
	for i, v := range signal {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(v))
	}

	return out
}

func decodeSignal(blob []byte) ([]float64, error) {
	if len(blob)%8 != 0 {
		return nil, fmt.Errorf("signal blob length %d is not a multiple of 8", len(blob))
	}

	out := make([]float64, len(blob)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(blob[8*i:]))
	}

	return out, nil
}
