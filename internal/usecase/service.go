package usecase

import (
	"context"
	"errors"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
	"github.com/dnellessen/terminal-sudoku/internal/ports"
	"github.com/dnellessen/terminal-sudoku/internal/session"
)

// Service is the facade the adapters (HTTP, CLI) talk to.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Sessions  *session.Registry
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, reg *session.Registry) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Sessions: reg}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, d)
}

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Check(ctx context.Context, candidate, original *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Check(ctx, candidate, original)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

// Sessions

// OpenSession generates a fresh puzzle and registers a session for it.
func (u *Service) OpenSession(ctx context.Context, d domain.Difficulty) (string, *session.Session, error) {
	if u.Sessions == nil {
		return "", nil, errNotConfigured
	}
	p, _, err := u.Generate(ctx, d)
	if err != nil {
		return "", nil, err
	}
	s := session.New(p)
	return u.Sessions.Open(s), s, nil
}

func (u *Service) Session(id string) (*session.Session, error) {
	if u.Sessions == nil {
		return nil, errNotConfigured
	}
	return u.Sessions.Get(id)
}

// CheckSession validates the session's working board against its puzzle.
func (u *Service) CheckSession(ctx context.Context, id string) (bool, []domain.CellCoord, error) {
	s, err := u.Session(id)
	if err != nil {
		return false, nil, err
	}
	board := s.Board()
	original := s.Puzzle().Board
	return u.Check(ctx, &board, &original)
}

func (u *Service) CloseSession(id string) {
	if u.Sessions != nil {
		u.Sessions.Close(id)
	}
}
