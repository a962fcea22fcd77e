package ensemble

import (
	"database/sql"
	"fmt"
)

// WithTag restricts iteration to members with the given tag.
func WithTag(tag string) func(*MemberIterator) {
	return func(it *MemberIterator) {
		it.tag = &tag
	}
}

// WithMinID restricts iteration to members with ID >= minID.
func WithMinID(minID int64) func(*MemberIterator) {
	return func(it *MemberIterator) {
		it.minID = &minID
	}
}

// MemberIterator streams ensemble members from the store in ID order.
// The signal blob of each member is decoded lazily, one row at a time.
type MemberIterator struct {
	rows    *sql.Rows
	current *Member
	err     error

	tag   *string
	minID *int64
}

// Members returns an iterator over the stored members, in ID order.
func (s *Store) Members(options ...func(*MemberIterator)) (*MemberIterator, error) {
	it := &MemberIterator{}

	for _, option := range options {
		option(it)
	}

	query := "SELECT id, tag, sample_rate, speed_hz, load_kn, signal FROM members"
	var args []any

	switch {
	case it.tag != nil && it.minID != nil:
		query += " WHERE tag = ? AND id >= ?"
		args = append(args, *it.tag, *it.minID)
	case it.tag != nil:
		query += " WHERE tag = ?"
		args = append(args, *it.tag)
	case it.minID != nil:
		query += " WHERE id >= ?"
		args = append(args, *it.minID)
	}

	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("ensemble: querying members: %w", err)
	}

	it.rows = rows

	return it, nil
}

// Next advances to the next member. It returns false when iteration is
// exhausted or an error occurred; check Err after the loop.
func (it *MemberIterator) Next() bool {
	if it.err != nil || !it.rows.Next() {
		return false
	}

	var m Member
	var blob []byte

	if err := it.rows.Scan(&m.ID, &m.Tag, &m.SampleRate, &m.SpeedHz, &m.LoadKN, &blob); err != nil {
		it.err = err
		return false
	}

	signal, err := decodeSignal(blob)
	if err != nil {
		it.err = fmt.Errorf("member %d: %w", m.ID, err)
		return false
	}

	m.Signal = signal
	it.current = &m

	return true
}

// Current returns the member the iterator is positioned on.
func (it *MemberIterator) Current() *Member {
	return it.current
}

// Err returns the first error encountered during iteration.
func (it *MemberIterator) Err() error {
	if it.err != nil {
		return it.err
	}

	return it.rows.Err()
}

// Close releases the underlying rows.
func (it *MemberIterator) Close() error {
	return it.rows.Close()
}

// Collect drains the iterator into a slice and closes it.
func (it *MemberIterator) Collect() ([]Member, error) {
	defer it.Close()

	var out []Member
	for it.Next() {
		out = append(out, *it.Current())
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
