package pressroom

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is returned when a requested post does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation wraps failures of store-enforced constraints,
	// such as a duplicate slug.
	ErrConstraintViolation = errors.New("constraint violation")
)

// OpenDB opens (or creates) the SQLite database at path and ensures its
// directory exists. The schema is not touched; run Migrate for that.
func OpenDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// _time_format=sqlite keeps timestamps in a sortable text layout.
	db, err := sql.Open("sqlite", "file:"+path+"?_time_format=sqlite")
	if err != nil {
		return nil, err
	}
	// WAL lets readers proceed during a write; busy_timeout makes writers wait
	// instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		_ = db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	return db, nil
}

// Store provides the post and contact operations on top of gorm.
type Store struct {
	db  *gorm.DB
	sql *sql.DB
	now func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreClock replaces the clock used for creation timestamps.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore wraps an open database. The caller keeps ownership of sqlDB only
// until Close is called on the Store.
func NewStore(sqlDB *sql.DB, opts ...StoreOption) (*Store, error) {
	s := &Store{sql: sqlDB, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	gdb, err := gorm.Open(&sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		NowFunc:                func() time.Time { return s.now().UTC() },
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	s.db = gdb
	return s, nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.sql.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

// CountPosts returns the total number of posts.
func (s *Store) CountPosts(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&Post{}).Count(&total).Error
	return total, err
}

// ListPostsPage returns up to limit posts, newest first, after skipping offset.
func (s *Store) ListPostsPage(ctx context.Context, offset, limit int) ([]Post, error) {
	var posts []Post
	err := s.db.WithContext(ctx).
		Order("created_at DESC").Order("sr_no DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// ListAllPosts returns every post, oldest first.
func (s *Store) ListAllPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := s.db.WithContext(ctx).Order("created_at ASC").Order("sr_no ASC").Find(&posts).Error
	return posts, err
}

// GetPost returns the post with the given serial number.
func (s *Store) GetPost(ctx context.Context, id uint) (Post, error) {
	var post Post
	err := s.db.WithContext(ctx).Where("sr_no = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Post{}, ErrNotFound
	}
	return post, err
}

// GetPostBySlug returns the post published under slug.
func (s *Store) GetPostBySlug(ctx context.Context, slug string) (Post, error) {
	var post Post
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Post{}, ErrNotFound
	}
	return post, err
}

// SearchPosts returns every post whose title, tagline or content contains q,
// ignoring case, newest first. LIKE wildcards inside q are honoured.
func (s *Store) SearchPosts(ctx context.Context, q string) ([]Post, error) {
	like := "%" + q + "%"
	var posts []Post
	err := s.db.WithContext(ctx).
		Where("lower(title) LIKE lower(?) OR lower(tagline) LIKE lower(?) OR lower(content) LIKE lower(?)", like, like, like).
		Order("created_at DESC").Order("sr_no DESC").
		Find(&posts).Error
	return posts, err
}

// CreatePost inserts p and fills in its ID and CreatedAt.
func (s *Store) CreatePost(ctx context.Context, p *Post) error {
	p.ID = 0
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// UpdatePost overwrites the editable fields of the post with p.ID. The
// creation time is left as it was.
func (s *Store) UpdatePost(ctx context.Context, p Post) error {
	res := s.db.WithContext(ctx).Model(&Post{}).Where("sr_no = ?", p.ID).
		Select("title", "slug", "content", "tagline", "img_file").
		Updates(map[string]interface{}{
			"title":    p.Title,
			"slug":     p.Slug,
			"content":  p.Content,
			"tagline":  p.Tagline,
			"img_file": p.ImageFile,
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost permanently removes the post with the given serial number.
func (s *Store) DeletePost(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Where("sr_no = ?", id).Delete(&Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateContact stores one contact-form submission.
func (s *Store) CreateContact(ctx context.Context, m *ContactMessage) error {
	m.ID = 0
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// ListContacts returns every stored contact message, oldest first.
func (s *Store) ListContacts(ctx context.Context) ([]ContactMessage, error) {
	var msgs []ContactMessage
	err := s.db.WithContext(ctx).Order("sr_no ASC").Find(&msgs).Error
	return msgs, err
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "NOT NULL constraint failed") {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return err
}
