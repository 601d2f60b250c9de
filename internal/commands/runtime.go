package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/tillbook-dev/tillbook/internal/accounts"
	"github.com/tillbook-dev/tillbook/internal/auditlog"
	"github.com/tillbook-dev/tillbook/internal/config"
	"github.com/tillbook-dev/tillbook/internal/gitops"
	"github.com/tillbook-dev/tillbook/internal/journal"
	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/report"
	"github.com/tillbook-dev/tillbook/internal/snapshot"
)

// ConfigFileName is the per-directory configuration file.
const ConfigFileName = "tillbook.yaml"

// Runtime wires the services a command needs: config, the books snapshot,
// the chart of accounts, and the journal.
type Runtime struct {
	booksDir string
	cfg      *config.Config
	books    *snapshot.Books
	accounts *accounts.Service
	journal  *journal.Service
	log      *logrus.Logger
}

// NewRuntime loads config, accounts, and the snapshot from a books directory.
func NewRuntime(booksDir string) (*Runtime, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg, err := config.Load(filepath.Join(booksDir, ConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	accts, err := accounts.Load(booksDir)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	books, err := snapshot.Load(booksDir)
	if err != nil {
		return nil, fmt.Errorf("loading books: %w", err)
	}

	return &Runtime{
		booksDir: booksDir,
		cfg:      cfg,
		books:    books,
		accounts: accts,
		journal:  journal.NewService(booksDir, accts),
		log:      log,
	}, nil
}

// ReportInputs assembles the aggregator inputs from the snapshot and the
// journal files.
func (rt *Runtime) ReportInputs() (report.Inputs, error) {
	lines, err := rt.journal.ReadAll()
	if err != nil {
		return report.Inputs{}, fmt.Errorf("reading journal: %w", err)
	}
	return report.Inputs{
		Products:     rt.books.Products,
		Sales:        rt.books.Sales,
		Expenses:     rt.books.Expenses,
		Customers:    rt.books.Customers,
		Suppliers:    rt.books.Suppliers,
		BankAccounts: rt.books.BankAccounts,
		Vouchers:     rt.books.Vouchers,
		Assets:       rt.books.Assets,
		Journal:      lines,
		Accounts:     rt.accounts,
	}, nil
}

// Audit records a balance mutation in the audit log.
func (rt *Runtime) Audit(action string, partyID string, txn model.AccountTransaction) error {
	entry := auditlog.Entry{
		Timestamp:    time.Now(),
		Actor:        rt.cfg.Git.AuthorName,
		Action:       action,
		PartyID:      partyID,
		TxnID:        txn.ID,
		Amount:       txn.Amount,
		BalanceAfter: txn.BalanceAfter,
	}
	if err := auditlog.Append(rt.booksDir, []auditlog.Entry{entry}); err != nil {
		return fmt.Errorf("appending audit log: %w", err)
	}
	return nil
}

// SaveBooks persists the snapshot and, when configured, commits the books
// directory.
func (rt *Runtime) SaveBooks(message string) error {
	if err := snapshot.Save(rt.booksDir, rt.books); err != nil {
		return fmt.Errorf("saving books: %w", err)
	}
	rt.log.WithField("dir", rt.booksDir).Debug("books saved")

	if rt.cfg.Git.AutoCommit && gitops.IsRepo(rt.booksDir) {
		hash, err := gitops.CommitAll(rt.booksDir, message, rt.cfg.Git.AuthorName, rt.cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("committing books: %w", err)
		}
		rt.log.WithFields(logrus.Fields{"commit": hash, "message": message}).Info("books committed")
	}
	return nil
}

// Epsilon is the configured currency-rounding tolerance.
func (rt *Runtime) Epsilon() decimal.Decimal {
	return rt.cfg.Rounding.EpsilonDecimal()
}
