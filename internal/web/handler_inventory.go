package web

import (
	"net/http"

	"github.com/dtcdev/invaccess/internal/domain"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := s.inventory.ListItems(r.Context(), q.Get("q"), q.Get("category"), domain.ItemStatus(q.Get("status")))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type addItemRequest struct {
	Description string `json:"description"`
	SerialNo    string `json:"serialNo"`
	Category    string `json:"category"`
	Location    string `json:"location"`
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	item, err := s.inventory.AddItem(r.Context(), req.Description, req.SerialNo, req.Category, req.Location)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleScanQR(w http.ResponseWriter, r *http.Request) {
	item, err := s.inventory.ScanQR(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type borrowRequest struct {
	BorrowerName   string `json:"borrowerName"`
	BorrowerEmail  string `json:"borrowerEmail"`
	Office         string `json:"office"`
	ExpectedReturn string `json:"expectedReturn"`
}

func (s *Server) handleBorrow(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseID(r)
	if err != nil {
		s.writeBadRequest(w, "invalid item id")
		return
	}

	var req borrowRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	txn, err := s.inventory.Borrow(r.Context(), itemID, req.BorrowerName, req.BorrowerEmail, req.Office, req.ExpectedReturn)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, txn)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	status := domain.TransactionStatus(r.URL.Query().Get("status"))
	txns, err := s.inventory.ListTransactions(r.Context(), status)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

func (s *Server) handleReturn(w http.ResponseWriter, r *http.Request) {
	txnID, err := parseID(r)
	if err != nil {
		s.writeBadRequest(w, "invalid transaction id")
		return
	}

	txn, err := s.inventory.Return(r.Context(), txnID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txn)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.inventory.Summary(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
