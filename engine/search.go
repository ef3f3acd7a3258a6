package engine

import (
	"github.com/Solid-State-Chess/max-sub000/board"
	"golang.org/x/exp/slices"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0

	// MaxPly bounds search plus quiescence recursion.
	MaxPly = 128
)

// Result is the outcome of a fixed-depth search. NoMove is set when the
// side to move has no legal move; InCheck then separates checkmate from
// stalemate.
type Result struct {
	Move    board.Move
	Score   int32
	Depth   int
	Nodes   uint64
	PV      []board.Move
	NoMove  bool
	InCheck bool
}

func (r Result) Checkmate() bool { return r.NoMove && r.InCheck }

func (r Result) Stalemate() bool { return r.NoMove && !r.InCheck }

// Searcher runs negamax alpha-beta over a single board using make/unmake.
// Move buffers are allocated once per Searcher, so a search itself does not
// allocate beyond the root move list and the principal variation. A Searcher
// is not safe for concurrent use.
type Searcher struct {
	opts    Options
	eval    Evaluator
	tt      *TransTable
	killers KillerStruct
	history historyTable
	moves   [MaxPly][board.MaxMoves]board.Move
	scored  [MaxPly][board.MaxMoves]move
	nodes   uint64

	Stats CutStatistics
}

func NewSearcher(opts Options) *Searcher {
	board.Init()
	s := &Searcher{opts: opts, eval: opts.Evaluator}
	if s.eval == nil {
		s.eval = NewEval()
	}
	if opts.UseTT {
		s.tt = NewTransTable(opts.TTBits)
	}
	return s
}

// TT returns the searcher's transposition table, or nil when disabled.
func (s *Searcher) TT() *TransTable { return s.tt }

// Reset forgets everything learned by earlier searches.
func (s *Searcher) Reset() {
	if s.tt != nil {
		s.tt.Clear()
	}
	s.killers.ClearKillers()
	s.history.clear()
}

// Search runs iterative deepening up to depth plies and returns the best
// move. The board is restored before returning.
func (s *Searcher) Search(b *board.Board, depth int) Result {
	depth = clamp(depth, 1, MaxPly/2)
	s.nodes = 0
	s.Stats.reset()
	s.killers.ClearKillers()

	res := Result{InCheck: b.InCheck()}
	rootMoves := b.LegalMoves(make([]board.Move, 0, board.MaxMoves))
	if len(rootMoves) == 0 {
		res.NoMove = true
		res.Score = DrawScore
		if res.InCheck {
			res.Score = -MaxScore
		}
		return res
	}

	for d := 1; d <= depth; d++ {
		score, best := s.rootsearch(b, rootMoves, d)
		res.Move, res.Score, res.Depth = best, score, d

		// A mate found at this depth cannot get shorter by searching deeper.
		if abs(score) > Checkmate {
			break
		}
	}
	res.Nodes = s.nodes
	res.PV = s.principalVariation(b, res.Move, res.Depth)
	return res
}

func (s *Searcher) rootsearch(b *board.Board, rootMoves []board.Move, depth int) (int32, board.Move) {
	alpha, beta := -MaxScore, MaxScore
	bestScore := -MaxScore
	bestMove := rootMoves[0]

	ttMove := board.NullMove
	if s.tt != nil {
		if e, ok := s.tt.Probe(b.Hash()); ok {
			ttMove = e.Move
		}
	}
	list := s.scoreMoves(b, rootMoves, s.scored[0][:0], ttMove, 0)

	for i := range list {
		if s.opts.OrderMoves {
			orderNextMove(i, list)
		}
		m := list[i].move
		b.MakeMove(m)
		score := -s.negamax(b, int8(depth-1), 1, -beta, -alpha)
		b.UnmakeMove(m)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if s.tt != nil {
		s.tt.Insert(b.Hash(), bestMove, scoreToTT(bestScore, 0), int8(depth), ExactFlag)
	}
	return bestScore, bestMove
}

func (s *Searcher) negamax(b *board.Board, depth int8, ply int, alpha, beta int32) int32 {
	if depth <= 0 {
		return s.quiescence(b, ply, 0, alpha, beta)
	}
	s.nodes++
	if ply >= MaxPly-1 {
		return s.eval.Evaluate(b)
	}
	if isDraw(b) {
		return DrawScore
	}

	alphaOrig := alpha
	ttMove := board.NullMove
	if s.tt != nil {
		if e, ok := s.tt.Probe(b.Hash()); ok {
			s.Stats.TTHits++
			ttMove = e.Move
			if usable, score := useEntry(e, depth, alpha, beta, ply); usable {
				s.Stats.TTCutoffs++
				return score
			}
		} else {
			s.Stats.TTMisses++
		}
	}

	moves := b.GenerateMoves(s.moves[ply][:0])
	list := s.scoreMoves(b, moves, s.scored[ply][:0], ttMove, ply)

	us := b.SideToMove()
	bestScore := -MaxScore
	bestMove := board.NullMove
	legalMoves := 0
	for i := range list {
		if s.opts.OrderMoves {
			orderNextMove(i, list)
		}
		m := list[i].move
		if !b.IsLegal(m) {
			continue
		}
		legalMoves++

		quiet := isQuiet(b, m)
		b.MakeMove(m)
		score := -s.negamax(b, depth-1, ply+1, -beta, -alpha)
		b.UnmakeMove(m)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if score >= beta {
			s.Stats.BetaCutoffs++
			if quiet {
				s.killers.InsertKiller(m, ply)
				s.history.increment(us, m, depth)
			}
			break
		}
		if quiet {
			s.history.decrement(us, m)
		}
	}

	if legalMoves == 0 {
		if b.InCheck() {
			return -MaxScore + int32(ply)
		}
		return DrawScore
	}

	if s.tt != nil {
		flag := AlphaFlag
		switch {
		case bestScore >= beta:
			flag = BetaFlag
		case bestScore > alphaOrig:
			flag = ExactFlag
		}
		s.tt.Insert(b.Hash(), bestMove, scoreToTT(bestScore, ply), depth, flag)
	}
	return bestScore
}

// quiescence only follows captures. The static score stands in for every
// quiet continuation.
func (s *Searcher) quiescence(b *board.Board, ply, qdepth int, alpha, beta int32) int32 {
	s.nodes++

	standpat := s.eval.Evaluate(b)
	if standpat >= beta {
		s.Stats.QStandPatCutoffs++
		return standpat
	}
	if ply >= MaxPly-1 || qdepth >= s.opts.QuiescenceDepth {
		return standpat
	}
	if standpat > alpha {
		alpha = standpat
	}
	bestScore := standpat

	moves := b.GenerateCaptures(s.moves[ply][:0])
	list := s.scoreMoves(b, moves, s.scored[ply][:0], board.NullMove, ply)
	for i := range list {
		if s.opts.OrderMoves {
			orderNextMove(i, list)
		}
		m := list[i].move
		if !b.IsLegal(m) {
			continue
		}

		b.MakeMove(m)
		score := -s.quiescence(b, ply+1, qdepth+1, -beta, -alpha)
		b.UnmakeMove(m)

		if score > bestScore {
			bestScore = score
		}
		if score >= beta {
			s.Stats.QBetaCutoffs++
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestScore
}

// principalVariation follows best moves through the transposition table,
// starting with the root move. Every stored move is checked for legality
// before it is played.
func (s *Searcher) principalVariation(b *board.Board, first board.Move, depth int) []board.Move {
	pv := []board.Move{first}
	if s.tt == nil {
		return pv
	}
	b.MakeMove(first)
	seen := []uint64{b.Hash()}
	for len(pv) < depth {
		e, ok := s.tt.Probe(b.Hash())
		if !ok || e.Move == board.NullMove {
			break
		}
		legal := b.LegalMoves(s.moves[0][:0])
		if !slices.Contains(legal, e.Move) {
			break
		}
		b.MakeMove(e.Move)
		pv = append(pv, e.Move)
		if slices.Contains(seen, b.Hash()) {
			break
		}
		seen = append(seen, b.Hash())
	}
	for i := len(pv) - 1; i >= 0; i-- {
		b.UnmakeMove(pv[i])
	}
	return pv
}
