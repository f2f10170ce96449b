package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"github.com/spaolacci/murmur3"
	"social_pilot/shared"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks social_pilot/dal IRepo

type IRepo interface {
	InitUpdateDb()
	AddAccount(acct *Account) error
	GetAccounts(platform shared.Platform) ([]*Account, error)
	GetActiveAccount(platform shared.Platform) (*Account, error)
	DeleteAccount(id int) error
	AddProfileIfNew(profile *Profile) (isNew bool, err error)
	GetProfiles(platform shared.Platform, maxCount int) ([]*Profile, error)
	AddAction(action *Action) error
	GetActions(platform shared.Platform) ([]*Action, error)
	GetUnfollowedFollows(platform shared.Platform, olderThan time.Time, maxCount int) ([]*Action, error)
	GetInteractedHandles(platform shared.Platform) ([]string, error)
	GetAccountCount() (int, error)
	GetProfileCount() (int, error)
	GetProfileCountsByPlatform() (map[shared.Platform]int, error)
	GetActionCount() (int, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) AddAccount(acct *Account) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if acct.CreatedAt.IsZero() {
		acct.CreatedAt = time.Now().UTC()
	}
	res, err := repo.db.Exec(`INSERT INTO accounts (created_at, username, platform, status)
		VALUES(?, ?, ?, ?)`,
		acct.CreatedAt, acct.Username, acct.Platform, acct.Status)
	if err != nil {
		return err
	}
	if lastId, err := res.LastInsertId(); err == nil {
		acct.Id = int(lastId)
	}
	return nil
}

func (repo *Repo) GetAccounts(platform shared.Platform) ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT id, created_at, username, platform, status FROM accounts`
	var args []any
	if platform != "" {
		query += ` WHERE platform=?`
		args = append(args, platform)
	}
	query += ` ORDER BY id ASC`
	rows, err := repo.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readAccounts(rows)
}

// GetActiveAccount returns the acting identity for a platform: the first
// active account in insertion order, or nil if there is none.
func (repo *Repo) GetActiveAccount(platform shared.Platform) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, created_at, username, platform, status FROM accounts
		WHERE platform=? AND status=? ORDER BY id ASC LIMIT 1`,
		platform, shared.AccountActive)
	var res Account
	err := row.Scan(&res.Id, &res.CreatedAt, &res.Username, &res.Platform, &res.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) DeleteAccount(id int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM accounts WHERE id=?`, id)
	return err
}

func readAccounts(rows *sql.Rows) ([]*Account, error) {
	var err error
	res := make([]*Account, 0)
	for rows.Next() {
		a := Account{}
		err = rows.Scan(&a.Id, &a.CreatedAt, &a.Username, &a.Platform, &a.Status)
		if err != nil {
			return nil, err
		}
		res = append(res, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// handleHash is the de-duplication key for collected profiles: a 64-bit
// murmur3 hash of handle + platform, stored in a unique column.
func handleHash(handle string, platform shared.Platform) int64 {
	return int64(murmur3.Sum64([]byte(handle + "|" + string(platform))))
}

// AddProfileIfNew inserts a collected profile unless one with the same
// (handle, platform) already exists; duplicates report isNew=false, no error.
func (repo *Repo) AddProfileIfNew(profile *Profile) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	if profile.InsertedAt.IsZero() {
		profile.InsertedAt = time.Now().UTC()
	}
	_, err = repo.db.Exec(`INSERT INTO profiles
		(handle_hash, target_handle, platform, origin_type, origin_profile, comment, comment_sentiment, niche, inserted_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		handleHash(profile.TargetHandle, profile.Platform),
		profile.TargetHandle, profile.Platform, profile.OriginType, profile.OriginProfile,
		profile.Comment, profile.CommentSentiment, profile.Niche, profile.InsertedAt)
	if err == nil {
		return
	}

	// Duplicate key: profile with this handle+platform already collected
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			isNew = false
			err = nil
			return
		}
	}
	return
}

// GetProfiles returns collected profiles for a platform in insertion order,
// truncated to maxCount; maxCount <= 0 means no limit.
func (repo *Repo) GetProfiles(platform shared.Platform, maxCount int) ([]*Profile, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT id, target_handle, platform, origin_type, origin_profile, comment, comment_sentiment, niche, inserted_at
		FROM profiles`
	var args []any
	if platform != "" {
		query += ` WHERE platform=?`
		args = append(args, platform)
	}
	query += ` ORDER BY id ASC`
	if maxCount > 0 {
		query += ` LIMIT ?`
		args = append(args, maxCount)
	}
	rows, err := repo.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Profile, 0)
	for rows.Next() {
		p := Profile{}
		err = rows.Scan(&p.Id, &p.TargetHandle, &p.Platform, &p.OriginType, &p.OriginProfile,
			&p.Comment, &p.CommentSentiment, &p.Niche, &p.InsertedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// AddAction appends to the action history and marks the target as interacted
// for its platform, both in one transaction.
func (repo *Repo) AddAction(action *Action) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if action.PerformedAt.IsZero() {
		action.PerformedAt = time.Now().UTC()
	}
	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	res, err := tx.Exec(`INSERT INTO actions (target_handle, platform, action_type, content, performed_at)
		VALUES(?, ?, ?, ?, ?)`,
		action.TargetHandle, action.Platform, action.ActionType, action.Content, action.PerformedAt)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	_, err = tx.Exec(`INSERT INTO interacted (platform, target_handle) VALUES(?, ?)
		ON CONFLICT DO NOTHING`,
		action.Platform, action.TargetHandle)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	if lastId, err := res.LastInsertId(); err == nil {
		action.Id = int(lastId)
	}
	return nil
}

func (repo *Repo) GetActions(platform shared.Platform) ([]*Action, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT id, target_handle, platform, action_type, content, performed_at FROM actions`
	var args []any
	if platform != "" {
		query += ` WHERE platform=?`
		args = append(args, platform)
	}
	query += ` ORDER BY id ASC`
	rows, err := repo.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readActions(rows)
}

// GetUnfollowedFollows returns the oldest follow actions on a platform that
// were performed before olderThan and have no later unfollow for the same
// handle.
func (repo *Repo) GetUnfollowedFollows(platform shared.Platform, olderThan time.Time, maxCount int) ([]*Action, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT f.id, f.target_handle, f.platform, f.action_type, f.content, f.performed_at
		FROM actions f
		WHERE f.platform=? AND f.action_type=? AND f.performed_at<?
		AND NOT EXISTS (SELECT 1 FROM actions u
			WHERE u.platform=f.platform AND u.target_handle=f.target_handle
			AND u.action_type=? AND u.id>f.id)
		ORDER BY f.performed_at ASC, f.id ASC LIMIT ?`,
		platform, shared.ActionFollow, olderThan, shared.ActionUnfollow, maxCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readActions(rows)
}

func readActions(rows *sql.Rows) ([]*Action, error) {
	var err error
	res := make([]*Action, 0)
	for rows.Next() {
		a := Action{}
		err = rows.Scan(&a.Id, &a.TargetHandle, &a.Platform, &a.ActionType, &a.Content, &a.PerformedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetInteractedHandles(platform shared.Platform) ([]string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT target_handle FROM interacted WHERE platform=? ORDER BY target_handle ASC`,
		platform)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]string, 0)
	for rows.Next() {
		var handle string
		if err = rows.Scan(&handle); err != nil {
			return nil, err
		}
		res = append(res, handle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetAccountCount() (int, error) {
	return repo.getCount(`SELECT COUNT(*) FROM accounts`)
}

func (repo *Repo) GetProfileCount() (int, error) {
	return repo.getCount(`SELECT COUNT(*) FROM profiles`)
}

func (repo *Repo) GetActionCount() (int, error) {
	return repo.getCount(`SELECT COUNT(*) FROM actions`)
}

func (repo *Repo) getCount(query string) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(query)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) GetProfileCountsByPlatform() (map[shared.Platform]int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT platform, COUNT(*) FROM profiles GROUP BY platform`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[shared.Platform]int)
	for rows.Next() {
		var platform shared.Platform
		var count int
		if err = rows.Scan(&platform, &count); err != nil {
			return nil, err
		}
		res[platform] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
