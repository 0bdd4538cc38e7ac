// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"strings"
	"sync"

	"github.com/danielhkuo/swab-vote/auth"
)

var (
	ErrVotingClosed     = errors.New("voting is currently not open")
	ErrUnknownCandidate = errors.New("selected candidate does not exist")
)

type Candidate struct {
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
	Description    string `json:"description"`
}

// Ballot is a member's current vote. Candidate is "" when no vote is held.
type Ballot struct {
	MemberNumber string `json:"member_number"`
	Candidate    string `json:"candidate"`
}

// DefaultCandidates returns the fixed slate for the election
func DefaultCandidates() []Candidate {
	return []Candidate{
		{
			CommonName:     "Treecreeper",
			ScientificName: "Certhia Familiaris",
			Description:    "It is similar to other treecreepers, and has a curved bill, patterned brown upperparts, whitish underparts, and long stiff tail feathers which help it creep up tree trunks.",
		},
		{
			CommonName:     "Curlew",
			ScientificName: "Numenius Arquata",
			Description:    "A large wader with a long down-curved bill, mottled brown plumage and a rising, bubbling call heard over moorland and estuaries.",
		},
		{
			CommonName:     "Fulmar",
			ScientificName: "Fulmarus Glacialis",
			Description:    "Fulmars come in one of two color morphs: a light one, with white head and body and gray wings and tail, and a dark one, which is uniformly gray.",
		},
	}
}

// Store holds the candidate slate, ballots, the admin secret and the voting
// flag. Ballots and the flag share one lock; candidates never change.
type Store struct {
	candidates  []Candidate
	adminSecret string

	mu      sync.RWMutex
	ballots map[string]Ballot
	open    bool
}

// NewStore creates a closed election. With no candidates given the default
// slate is used.
func NewStore(adminSecret string, candidates ...Candidate) *Store {
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}
	slate := make([]Candidate, len(candidates))
	copy(slate, candidates)

	return &Store{
		candidates:  slate,
		adminSecret: adminSecret,
		ballots:     make(map[string]Ballot),
	}
}

// Candidates returns a copy of the slate in its fixed order
func (s *Store) Candidates() []Candidate {
	out := make([]Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// CurrentBallot returns the member's ballot, or an empty one if none is held
func (s *Store) CurrentBallot(memberNumber string) Ballot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.ballots[memberNumber]; ok {
		return b
	}
	return Ballot{MemberNumber: memberNumber}
}

// Cast replaces any ballot the member holds with one for candidateName.
// The name is matched case-insensitively and stored in canonical form.
func (s *Store) Cast(memberNumber, candidateName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrVotingClosed
	}

	candidate, ok := s.lookup(candidateName)
	if !ok {
		return ErrUnknownCandidate
	}

	delete(s.ballots, memberNumber)
	s.ballots[memberNumber] = Ballot{
		MemberNumber: memberNumber,
		Candidate:    candidate.CommonName,
	}
	return nil
}

// Withdraw removes the member's ballot. Withdrawing without a ballot is not
// an error.
func (s *Store) Withdraw(memberNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrVotingClosed
	}
	delete(s.ballots, memberNumber)
	return nil
}

// Tally counts ballots per candidate common name. Every candidate appears,
// including those with no votes.
func (s *Store) Tally() map[string]int {
	tally := make(map[string]int, len(s.candidates))
	for _, c := range s.candidates {
		tally[c.CommonName] = 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.ballots {
		if c, ok := s.lookup(b.Candidate); ok {
			tally[c.CommonName]++
		}
	}
	return tally
}

// BallotCount returns the number of ballots currently held
func (s *Store) BallotCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ballots)
}

func (s *Store) SetOpen() {
	s.mu.Lock()
	s.open = true
	s.mu.Unlock()
}

func (s *Store) SetClosed() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

func (s *Store) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// CheckAdminPassword compares against the configured admin secret in
// constant time
func (s *Store) CheckAdminPassword(password string) bool {
	return auth.SecretsMatch(password, s.adminSecret)
}

func (s *Store) lookup(name string) (Candidate, bool) {
	if name == "" {
		return Candidate{}, false
	}
	for _, c := range s.candidates {
		if strings.EqualFold(c.CommonName, name) {
			return c, true
		}
	}
	return Candidate{}, false
}
