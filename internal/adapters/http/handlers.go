package httpadapter

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
	"github.com/dnellessen/terminal-sudoku/internal/session"
	"github.com/dnellessen/terminal-sudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r gin.IRouter) {
	v1 := r.Group("/api").Group("/v1")
	v1.POST("/generate", h.generate)
	v1.POST("/solve", h.solve)
	v1.POST("/check", h.check)
	v1.POST("/hint", h.hint)
	v1.POST("/session", h.openSession)
	v1.GET("/session/:id", h.getSession)
	v1.PUT("/session/:id/cell", h.setCell)
	v1.POST("/session/:id/check", h.checkSession)
	v1.DELETE("/session/:id", h.closeSession)
}

func fail(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty"`
}

type generateResp struct {
	Difficulty string      `json:"difficulty"`
	Board      domain.Grid `json:"board"`
	Solution   domain.Grid `json:"solution"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	// Empty body means default difficulty.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		fail(c, http.StatusBadRequest, err)
		return
	}
	diff := domain.Medium
	if req.Difficulty != "" {
		d, err := domain.ParseDifficulty(req.Difficulty)
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}
		diff = d
	}
	p, st, err := h.UC.Generate(c.Request.Context(), diff)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Difficulty: p.Difficulty.String(),
		Board:      p.Board,
		Solution:   p.Solution,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Board domain.Grid `json:"board"`
}

type solveResp struct {
	Solved     bool        `json:"solved"`
	Board      domain.Grid `json:"board"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) solve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	grid := req.Board
	solved, st, err := h.UC.Solve(c.Request.Context(), &grid)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, domain.ErrBadCell) {
			code = http.StatusBadRequest
		}
		fail(c, code, err)
		return
	}
	c.JSON(http.StatusOK, solveResp{
		Solved:     solved,
		Board:      grid,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Check ----

type checkReq struct {
	Board    domain.Grid `json:"board"`
	Original domain.Grid `json:"original"`
}

type checkResp struct {
	Solved    bool               `json:"solved"`
	Conflicts []domain.CellCoord `json:"conflicts"`
}

func (h *Handler) check(c *gin.Context) {
	var req checkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	solved, conflicts, err := h.UC.Check(c.Request.Context(), &req.Board, &req.Original)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, domain.ErrBadCell) {
			code = http.StatusBadRequest
		}
		fail(c, code, err)
		return
	}
	c.JSON(http.StatusOK, checkResp{Solved: solved, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board domain.Grid `json:"board"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) hint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	hh, found, err := h.UC.Hint(c.Request.Context(), &req.Board)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, domain.ErrBadCell) {
			code = http.StatusBadRequest
		}
		fail(c, code, err)
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: found, Hint: hh})
}

// ---- Sessions ----

type openSessionReq struct {
	Difficulty string `json:"difficulty"`
}

type sessionResp struct {
	ID         string           `json:"id"`
	Difficulty string           `json:"difficulty"`
	Board      domain.Grid      `json:"board"`
	Cursor     domain.CellCoord `json:"cursor"`
}

func (h *Handler) openSession(c *gin.Context) {
	var req openSessionReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		fail(c, http.StatusBadRequest, err)
		return
	}
	diff := domain.Medium
	if req.Difficulty != "" {
		d, err := domain.ParseDifficulty(req.Difficulty)
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}
		diff = d
	}
	id, s, err := h.UC.OpenSession(c.Request.Context(), diff)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, sessionResp{
		ID:         id,
		Difficulty: s.Puzzle().Difficulty.String(),
		Board:      s.Board(),
		Cursor:     s.Cursor(),
	})
}

func (h *Handler) getSession(c *gin.Context) {
	s, err := h.UC.Session(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, sessionResp{
		ID:         c.Param("id"),
		Difficulty: s.Puzzle().Difficulty.String(),
		Board:      s.Board(),
		Cursor:     s.Cursor(),
	})
}

type setCellReq struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Digit uint8 `json:"digit"`
}

func (h *Handler) setCell(c *gin.Context) {
	s, err := h.UC.Session(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, err)
		return
	}
	var req setCellReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := s.Set(req.Row, req.Col, req.Digit); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, session.ErrFixedCell) {
			code = http.StatusConflict
		}
		fail(c, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"board": s.Board()})
}

func (h *Handler) checkSession(c *gin.Context) {
	solved, conflicts, err := h.UC.CheckSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, session.ErrNotFound) {
			code = http.StatusNotFound
		}
		fail(c, code, err)
		return
	}
	c.JSON(http.StatusOK, checkResp{Solved: solved, Conflicts: conflicts})
}

func (h *Handler) closeSession(c *gin.Context) {
	h.UC.CloseSession(c.Param("id"))
	c.Status(http.StatusNoContent)
}
