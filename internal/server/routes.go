package server

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danmuck/nibblekit/internal/nibble"
	"github.com/danmuck/nibblekit/internal/nibble/array"
	"github.com/danmuck/nibblekit/internal/nibble/pair"
	"github.com/danmuck/nibblekit/internal/observability"
	"github.com/danmuck/nibblekit/internal/packfile"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type splitRequest struct {
	Byte *int `json:"byte"`
}

type packRequest struct {
	Nibbles string `json:"nibbles"`
	Framed  bool   `json:"framed"`
}

type unpackRequest struct {
	Bytes  string `json:"bytes"`
	Framed bool   `json:"framed"`
}

// Operands are pointers so a missing field is rejected rather than read as 0.
type combineRequest struct {
	High *nibble.Nibble `json:"high"`
	Low  *nibble.Nibble `json:"low"`
}

type arithRequest struct {
	LHS *nibble.Nibble `json:"lhs"`
	RHS *nibble.Nibble `json:"rhs"`
}

var errMissingOperand = errors.New("missing operand")

type nibbleInfo struct {
	Value nibble.Nibble `json:"value"`
	Hex   string        `json:"hex"`
}

func (s *Server) RegisterRoutes() {
	r := s.router
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.Name,
			"version": "0.1.0",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.GET("/nibbles", s.handleList)
	v1.POST("/split", s.handleSplit)
	v1.POST("/combine", s.handleCombine)
	v1.POST("/pack", s.handlePack)
	v1.POST("/unpack", s.handleUnpack)
	v1.POST("/arith/:op", s.handleArith)
}

func (s *Server) handleList(c *gin.Context) {
	out := make([]nibbleInfo, 0, 16)
	for n := range nibble.All() {
		out = append(out, nibbleInfo{Value: n, Hex: n.String()})
	}
	c.JSON(http.StatusOK, gin.H{"nibbles": out})
}

func (s *Server) handleSplit(c *gin.Context) {
	var req splitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.Byte == nil || *req.Byte < 0 || *req.Byte > 0xFF {
		fail(c, http.StatusBadRequest, errors.New("byte must be within [0, 255]"))
		return
	}
	observability.RecordCodec("split", 2)
	c.JSON(http.StatusOK, pair.FromByte(byte(*req.Byte)))
}

func (s *Server) handleCombine(c *gin.Context) {
	var req combineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.High == nil || req.Low == nil {
		fail(c, http.StatusBadRequest, fmt.Errorf("%w: high and low are required", errMissingOperand))
		return
	}
	observability.RecordCodec("combine", 2)
	c.JSON(http.StatusOK, gin.H{"byte": pair.Combine(*req.High, *req.Low)})
}

func (s *Server) handlePack(c *gin.Context) {
	var req packRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := s.checkSize(len(req.Nibbles)); err != nil {
		fail(c, statusFor(err), err)
		return
	}
	ns, err := array.FromHex(req.Nibbles)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	observability.RecordCodec("pack", len(ns))
	packed := array.ToBytes(ns)
	if req.Framed {
		packed = packfile.Marshal(ns)
	}
	c.JSON(http.StatusOK, gin.H{
		"bytes": hex.EncodeToString(packed),
		"odd":   len(ns)%2 == 1,
	})
}

func (s *Server) handleUnpack(c *gin.Context) {
	var req unpackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := s.checkSize(len(req.Bytes)); err != nil {
		fail(c, statusFor(err), err)
		return
	}
	bs, err := hex.DecodeString(req.Bytes)
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Errorf("bytes: %w", err))
		return
	}
	ns := array.FromBytes(bs)
	if req.Framed {
		if ns, err = packfile.Unmarshal(bs, packfile.Limits{MaxNibbles: uint64(s.maxNibbles)}); err != nil {
			fail(c, statusFor(err), err)
			return
		}
	}
	observability.RecordCodec("unpack", len(ns))
	c.JSON(http.StatusOK, gin.H{"nibbles": array.ToHex(ns)})
}

func (s *Server) handleArith(c *gin.Context) {
	op, err := nibble.ParseOp(c.Param("op"))
	if err != nil {
		fail(c, http.StatusNotFound, err)
		return
	}
	var req arithRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.LHS == nil || req.RHS == nil {
		fail(c, http.StatusBadRequest, fmt.Errorf("%w: lhs and rhs are required", errMissingOperand))
		return
	}
	result, overflow, err := nibble.Apply(op, *req.LHS, *req.RHS)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	observability.RecordArith(string(op), overflow)
	c.JSON(http.StatusOK, gin.H{
		"op":       op,
		"result":   result,
		"overflow": overflow,
	})
}
