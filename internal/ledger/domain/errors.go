package domain

import "errors"

var (
	ErrInvalidEntryLines = errors.New("invalid_entry_lines")
	ErrInvalidLineAmount = errors.New("invalid_line_amount")
	ErrInvalidLineType   = errors.New("invalid_line_type")
	ErrInvalidEntryDate  = errors.New("invalid_entry_date")
	ErrEntryNotBalanced  = errors.New("entry_not_balanced")

	// ErrSequenceNotSeeded means the journal sequence row is missing.
	// Seeding happens at migration; it cannot be recovered mid-transaction
	// because an insert racing another seed would abort the transaction on
	// postgres.
	ErrSequenceNotSeeded = errors.New("journal_sequence_not_seeded")
)
