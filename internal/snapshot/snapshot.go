// Package snapshot loads and saves the books.json collections snapshot. The
// core computations never touch disk; they receive these collections and the
// host (the CLI) persists the whole snapshot after each successful mutation.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// FileName is the snapshot file inside a books directory.
const FileName = "books.json"

// Books is the full collections snapshot.
type Books struct {
	Products     []model.Product     `json:"products"`
	Sales        []model.Sale        `json:"sales"`
	Expenses     []model.Expense     `json:"expenses"`
	Customers    []model.Party       `json:"customers"`
	Suppliers    []model.Party       `json:"suppliers"`
	BankAccounts []model.BankAccount `json:"bankAccounts"`
	Vouchers     []model.Voucher     `json:"vouchers"`
	Assets       []model.Asset       `json:"assets"`
	Shifts       []model.Shift       `json:"shifts"`
}

// Load reads and validates books.json from a books directory. A missing file
// yields empty books, so a freshly initialized directory works without one.
func Load(booksDir string) (*Books, error) {
	path := filepath.Join(booksDir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Books{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var books Books
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if err := books.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &books, nil
}

// Save writes books.json atomically (write-then-rename) so an interrupted
// save never leaves a half-written snapshot behind.
func Save(booksDir string, books *Books) error {
	if err := books.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid snapshot: %w", err)
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	path := filepath.Join(booksDir, FileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Validate rejects malformed shapes at the boundary: negative magnitudes and
// unknown enum labels never reach the aggregation functions.
func (b *Books) Validate() error {
	for _, p := range b.Products {
		if p.CostPrice.IsNegative() || p.SalePrice.IsNegative() {
			return fmt.Errorf("product %q: negative price", p.Name)
		}
	}

	for _, s := range b.Sales {
		for _, l := range s.Lines {
			if l.Quantity.IsNegative() || l.UnitPrice.IsNegative() || l.CostAtSale.IsNegative() {
				return fmt.Errorf("sale %s: negative line values", s.Number)
			}
		}
	}

	for _, e := range b.Expenses {
		if e.Amount.IsNegative() {
			return fmt.Errorf("expense %q: negative amount", e.Description)
		}
	}

	for _, group := range [][]model.Party{b.Customers, b.Suppliers} {
		for _, p := range group {
			if _, err := model.ParsePartyKind(string(p.Kind)); err != nil {
				return fmt.Errorf("party %q: %w", p.Name, err)
			}
			for _, txn := range p.Transactions {
				if _, err := model.ParseTxnKind(string(txn.Kind)); err != nil {
					return fmt.Errorf("party %q: %w", p.Name, err)
				}
				if txn.Amount.IsNegative() {
					return fmt.Errorf("party %q: transaction %s has negative amount", p.Name, txn.ID)
				}
			}
		}
	}

	for _, v := range b.Vouchers {
		if _, err := model.ParseVoucherType(string(v.Type)); err != nil {
			return fmt.Errorf("voucher %s: %w", v.Number, err)
		}
		if v.Amount.IsNegative() {
			return fmt.Errorf("voucher %s: negative amount", v.Number)
		}
		if v.Cheque != nil {
			if _, err := model.ParseChequeStatus(string(v.Cheque.Status)); err != nil {
				return fmt.Errorf("voucher %s: %w", v.Number, err)
			}
		}
	}

	for _, a := range b.Assets {
		if a.PurchaseValue.IsNegative() || a.Rate.IsNegative() {
			return fmt.Errorf("asset %q: negative value or rate", a.Name)
		}
	}

	for _, s := range b.Shifts {
		if s.Status != model.ShiftOpen && s.Status != model.ShiftClosed {
			return fmt.Errorf("shift %s: unknown status %q", s.ID, s.Status)
		}
		if s.StartCash.IsNegative() {
			return fmt.Errorf("shift %s: negative start cash", s.ID)
		}
	}

	return nil
}

// Party finds a customer or supplier by ID.
func (b *Books) Party(partyID string) (*model.Party, bool) {
	for i := range b.Customers {
		if b.Customers[i].ID == partyID {
			return &b.Customers[i], true
		}
	}
	for i := range b.Suppliers {
		if b.Suppliers[i].ID == partyID {
			return &b.Suppliers[i], true
		}
	}
	return nil, false
}

// PartyByName finds a customer or supplier by exact name.
func (b *Books) PartyByName(name string) (*model.Party, bool) {
	for i := range b.Customers {
		if b.Customers[i].Name == name {
			return &b.Customers[i], true
		}
	}
	for i := range b.Suppliers {
		if b.Suppliers[i].Name == name {
			return &b.Suppliers[i], true
		}
	}
	return nil, false
}

// BankAccount finds a bank account by ID.
func (b *Books) BankAccount(accountID string) (*model.BankAccount, bool) {
	for i := range b.BankAccounts {
		if b.BankAccounts[i].ID == accountID {
			return &b.BankAccounts[i], true
		}
	}
	return nil, false
}

// OpenShift returns the currently open shift, if any.
func (b *Books) OpenShift() (*model.Shift, bool) {
	for i := range b.Shifts {
		if b.Shifts[i].Status == model.ShiftOpen {
			return &b.Shifts[i], true
		}
	}
	return nil, false
}

// PendingCheques returns vouchers carrying a pending cheque.
func (b *Books) PendingCheques() []*model.Voucher {
	var pending []*model.Voucher
	for i := range b.Vouchers {
		v := &b.Vouchers[i]
		if v.Cheque != nil && v.Cheque.Status == model.ChequePending {
			pending = append(pending, v)
		}
	}
	return pending
}
